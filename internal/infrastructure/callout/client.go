package callout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the remote call-initiation service that places the survey
// calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a call-initiation client with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

type callRequest struct {
	PhoneNumbers []string `json:"phoneNumbers"`
}

// PlaceCalls submits one outbound-call request for the given E.164 numbers.
// The remote service owns dialing, retries and IVR execution; this call only
// hands the batch over.
func (c *Client) PlaceCalls(ctx context.Context, phoneNumbers []string) error {
	body, err := json.Marshal(callRequest{PhoneNumbers: phoneNumbers})
	if err != nil {
		return fmt.Errorf("failed to encode call request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build call request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		// Keep the body short; the upstream error text is part of the
		// user-visible failure message.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("call service returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

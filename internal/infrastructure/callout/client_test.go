package callout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceCallsSendsBatch(t *testing.T) {
	var got struct {
		PhoneNumbers []string `json:"phoneNumbers"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.PlaceCalls(context.Background(), []string{"+971501234567", "+971509876543"})
	require.NoError(t, err)
	assert.Equal(t, []string{"+971501234567", "+971509876543"}, got.PhoneNumbers)
}

func TestPlaceCallsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no agents available", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.PlaceCalls(context.Background(), []string{"+971501234567"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "no agents available")
}

func TestPlaceCallsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, time.Minute)
	err := client.PlaceCalls(ctx, []string{"+971501234567"})
	assert.Error(t, err)
}

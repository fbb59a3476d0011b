package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	supabase "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// ResponseRepository reads the survey responses from the remote managed data
// store. It never writes; records are created by the external call-processing
// backend.
type ResponseRepository struct {
	table string
	log   *zap.Logger

	// listRaw returns the raw JSON array of response records. Kept as a
	// field so tests can run the decode path without a live store.
	listRaw func() ([]byte, error)
}

// NewResponseRepository creates a repository backed by the given data store
// client and table.
func NewResponseRepository(client *supabase.Client, table string, log *zap.Logger) *ResponseRepository {
	return &ResponseRepository{
		table: table,
		log:   log,
		listRaw: func() ([]byte, error) {
			data, _, err := client.From(table).Select("*", "exact", false).Execute()
			return data, err
		},
	}
}

// FetchAll lists every survey response, newest first. Records that fail
// validation are skipped and logged, never propagated as an error. The
// createdAt-descending order is enforced here, not assumed from the store.
func (r *ResponseRepository) FetchAll(ctx context.Context) ([]entities.SurveyResponseRecord, error) {
	type listResult struct {
		data []byte
		err  error
	}

	// The store client has no context support; run the call aside and
	// honor cancellation and the fetch timeout ourselves.
	ch := make(chan listResult, 1)
	go func() {
		data, err := r.listRaw()
		ch <- listResult{data: data, err: err}
	}()

	var raw []byte
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", entities.ErrFetchFailed, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrFetchFailed, res.err)
		}
		raw = res.data
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: invalid response list: %v", entities.ErrFetchFailed, err)
	}

	records := make([]entities.SurveyResponseRecord, 0, len(rows))
	for i, row := range rows {
		record, err := decodeRecord(row)
		if err != nil {
			r.log.Warn("skipping malformed survey response record",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

// wireResponse mirrors the remote record shape before validation. The store
// is duck-typed, so every field is decoded defensively.
type wireResponse struct {
	ID             interface{}       `json:"id"`
	Timestamp      float64           `json:"timestamp"`
	CreatedAt      string            `json:"created_at"`
	CustomerPhone  string            `json:"customer_phone"`
	Attributes     map[string]string `json:"Attributes"`
	SentimentScore interface{}       `json:"sentiment_score"`
}

// decodeRecord validates one raw record into a SurveyResponseRecord. Only
// attribute keys from the fixed question set survive decoding.
func decodeRecord(raw json.RawMessage) (entities.SurveyResponseRecord, error) {
	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return entities.SurveyResponseRecord{}, fmt.Errorf("invalid record shape: %w", err)
	}

	id, err := decodeID(wire.ID)
	if err != nil {
		return entities.SurveyResponseRecord{}, err
	}

	createdAt, err := decodeCreatedAt(wire.CreatedAt, wire.Timestamp)
	if err != nil {
		return entities.SurveyResponseRecord{}, err
	}

	attributes := make(map[string]string, len(entities.Questions))
	for _, question := range entities.Questions {
		if value, ok := wire.Attributes[question]; ok {
			attributes[question] = value
		}
	}

	return entities.SurveyResponseRecord{
		ID:             id,
		CreatedAt:      createdAt,
		CustomerPhone:  wire.CustomerPhone,
		Attributes:     attributes,
		SentimentScore: decodeSentiment(wire.SentimentScore),
	}, nil
}

func decodeID(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("record has empty id")
		}
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("record has no id")
	}
}

// decodeCreatedAt accepts either an ISO timestamp (managed store default) or
// the legacy epoch-seconds float the call backend used to write.
func decodeCreatedAt(createdAt string, timestamp float64) (time.Time, error) {
	if createdAt != "" {
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			return t, nil
		}
		if t, err := time.Parse("2006-01-02T15:04:05", createdAt); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("unparseable created_at %q", createdAt)
	}
	if timestamp > 0 {
		sec := int64(timestamp)
		nsec := int64((timestamp - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nsec), nil
	}
	return time.Time{}, fmt.Errorf("record has no timestamp")
}

func decodeSentiment(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCallPlacer struct {
	placed [][]string
	err    error
}

func (f *fakeCallPlacer) PlaceCalls(ctx context.Context, phoneNumbers []string) error {
	f.placed = append(f.placed, phoneNumbers)
	return f.err
}

type fakeCallLogStore struct {
	logs []entities.CallLog
}

func (f *fakeCallLogStore) CreateLogs(logs []entities.CallLog) error {
	f.logs = append(f.logs, logs...)
	return nil
}

func TestNormalizeNumbersFromEntries(t *testing.T) {
	uc := NewCallUseCase(&fakeCallPlacer{}, nil, zap.NewNop())

	tests := []struct {
		name    string
		entries []PhoneEntry
		want    []string
	}{
		{
			name:    "prefix and subscriber concatenate",
			entries: []PhoneEntry{{CountryCode: "+971", PhoneNumber: "501234567"}},
			want:    []string{"+971501234567"},
		},
		{
			name:    "formatting characters are stripped",
			entries: []PhoneEntry{{CountryCode: "971", PhoneNumber: "50 123-4567"}},
			want:    []string{"+971501234567"},
		},
		{
			name: "multiple entries keep order",
			entries: []PhoneEntry{
				{CountryCode: "+971", PhoneNumber: "501234567"},
				{CountryCode: "+1", PhoneNumber: "2025550123"},
			},
			want: []string{"+971501234567", "+12025550123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			numbers, err := uc.NormalizeNumbers(CallInput{Entries: tt.entries})
			require.NoError(t, err)
			assert.Equal(t, tt.want, numbers)
		})
	}
}

func TestNormalizeNumbersValidation(t *testing.T) {
	uc := NewCallUseCase(&fakeCallPlacer{}, nil, zap.NewNop())

	tests := []struct {
		name  string
		input CallInput
	}{
		{name: "empty input"},
		{
			name:  "blank phone number",
			input: CallInput{Entries: []PhoneEntry{{CountryCode: "+971", PhoneNumber: "   "}}},
		},
		{
			name:  "blank country code",
			input: CallInput{Entries: []PhoneEntry{{PhoneNumber: "501234567"}}},
		},
		{
			name:  "non-numeric pre-normalized number",
			input: CallInput{PhoneNumbers: []string{"not-a-number"}},
		},
		{
			name:  "pre-normalized number missing plus prefix",
			input: CallInput{PhoneNumbers: []string{"971501234567"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.NormalizeNumbers(tt.input)
			assert.ErrorIs(t, err, entities.ErrValidation)
		})
	}
}

func TestNormalizeNumbersPassThrough(t *testing.T) {
	uc := NewCallUseCase(&fakeCallPlacer{}, nil, zap.NewNop())

	numbers, err := uc.NormalizeNumbers(CallInput{PhoneNumbers: []string{"+971501234567"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"+971501234567"}, numbers)
}

func TestTriggerCallsSubmitsBatch(t *testing.T) {
	placer := &fakeCallPlacer{}
	logs := &fakeCallLogStore{}
	uc := NewCallUseCase(placer, logs, zap.NewNop())

	count, err := uc.TriggerCalls(context.Background(), CallInput{
		Entries: []PhoneEntry{
			{CountryCode: "+971", PhoneNumber: "501234567"},
			{CountryCode: "+971", PhoneNumber: "509876543"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, placer.placed, 1)
	assert.Equal(t, []string{"+971501234567", "+971509876543"}, placer.placed[0])

	require.Len(t, logs.logs, 2)
	for _, entry := range logs.logs {
		assert.Equal(t, entities.CallStatusSubmitted, entry.Status)
		assert.Empty(t, entry.Error)
	}
}

func TestTriggerCallsValidationStopsSubmission(t *testing.T) {
	placer := &fakeCallPlacer{}
	uc := NewCallUseCase(placer, nil, zap.NewNop())

	_, err := uc.TriggerCalls(context.Background(), CallInput{
		Entries: []PhoneEntry{{CountryCode: "+971"}},
	})
	assert.ErrorIs(t, err, entities.ErrValidation)
	assert.Empty(t, placer.placed)
}

func TestTriggerCallsWrapsServiceFailure(t *testing.T) {
	placer := &fakeCallPlacer{err: errors.New("service unavailable")}
	logs := &fakeCallLogStore{}
	uc := NewCallUseCase(placer, logs, zap.NewNop())

	_, err := uc.TriggerCalls(context.Background(), CallInput{
		PhoneNumbers: []string{"+971501234567"},
	})
	assert.ErrorIs(t, err, entities.ErrSubmitFailed)
	assert.Contains(t, err.Error(), "service unavailable")

	require.Len(t, logs.logs, 1)
	assert.Equal(t, entities.CallStatusFailed, logs.logs[0].Status)
	assert.Equal(t, "service unavailable", logs.logs[0].Error)
}

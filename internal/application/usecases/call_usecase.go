package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CallPlacer submits a batch of outbound calls to the remote service.
type CallPlacer interface {
	PlaceCalls(ctx context.Context, phoneNumbers []string) error
}

// CallLogStore records call trigger outcomes. May be nil when logging is
// disabled.
type CallLogStore interface {
	CreateLogs(logs []entities.CallLog) error
}

// PhoneEntry is one row of the dial form: a country-code prefix plus the
// subscriber number as typed.
type PhoneEntry struct {
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// CallInput is the trigger payload. Either pre-normalized E.164 numbers or
// raw form entries; when entries are present they win.
type CallInput struct {
	PhoneNumbers []string     `json:"phoneNumbers"`
	Entries      []PhoneEntry `json:"entries"`
}

// CallUseCase normalizes, validates and submits outbound survey calls.
type CallUseCase struct {
	caller   CallPlacer
	logs     CallLogStore
	validate *validator.Validate
	log      *zap.Logger
}

// NewCallUseCase creates a new CallUseCase.
func NewCallUseCase(caller CallPlacer, logs CallLogStore, log *zap.Logger) *CallUseCase {
	return &CallUseCase{
		caller:   caller,
		logs:     logs,
		validate: validator.New(),
		log:      log,
	}
}

// NormalizeNumbers turns the input into a validated E.164 list: the selected
// country-code prefix concatenated with the digits-only subscriber number.
// A blank number or prefix is a validation error; nothing is submitted.
func (u *CallUseCase) NormalizeNumbers(input CallInput) ([]string, error) {
	numbers := input.PhoneNumbers

	if len(input.Entries) > 0 {
		numbers = make([]string, 0, len(input.Entries))
		for _, entry := range input.Entries {
			code := digitsOnly(entry.CountryCode)
			if code == "" {
				return nil, fmt.Errorf("%w: country code is required", entities.ErrValidation)
			}
			subscriber := digitsOnly(entry.PhoneNumber)
			if subscriber == "" {
				return nil, fmt.Errorf("%w: phone number is required", entities.ErrValidation)
			}
			numbers = append(numbers, "+"+code+subscriber)
		}
	}

	if len(numbers) == 0 {
		return nil, fmt.Errorf("%w: at least one phone number is required", entities.ErrValidation)
	}

	for _, number := range numbers {
		if err := u.validate.Var(number, "e164"); err != nil {
			return nil, fmt.Errorf("%w: invalid phone number %q", entities.ErrValidation, number)
		}
	}

	return numbers, nil
}

// TriggerCalls validates the input and hands the batch to the call service.
// Returns the number of calls submitted.
func (u *CallUseCase) TriggerCalls(ctx context.Context, input CallInput) (int, error) {
	numbers, err := u.NormalizeNumbers(input)
	if err != nil {
		return 0, err
	}

	if err := u.caller.PlaceCalls(ctx, numbers); err != nil {
		u.recordLogs(numbers, entities.CallStatusFailed, err.Error())
		return 0, fmt.Errorf("%w: %v", entities.ErrSubmitFailed, err)
	}

	u.recordLogs(numbers, entities.CallStatusSubmitted, "")
	u.log.Info("outbound calls submitted", zap.Int("count", len(numbers)))
	return len(numbers), nil
}

// recordLogs stores one call log row per number. Log failures must never
// mask the trigger outcome.
func (u *CallUseCase) recordLogs(numbers []string, status, errText string) {
	if u.logs == nil {
		return
	}

	now := time.Now()
	logs := make([]entities.CallLog, 0, len(numbers))
	for _, number := range numbers {
		logs = append(logs, entities.CallLog{
			ID:        uuid.NewString(),
			Phone:     number,
			Status:    status,
			Error:     errText,
			CreatedAt: now,
		})
	}
	if err := u.logs.CreateLogs(logs); err != nil {
		u.log.Error("failed to record call logs", zap.Error(err))
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

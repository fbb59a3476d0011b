package usecases

import (
	"testing"

	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestCreateSurveyRejectsInvalidInput(t *testing.T) {
	uc := NewSurveyUseCase(nil)

	tests := []struct {
		name  string
		input SurveyInput
	}{
		{
			name:  "missing name",
			input: SurveyInput{Questions: []SurveyQuestionInput{{Text: "q", Options: []string{"yes"}}}},
		},
		{
			name:  "no questions",
			input: SurveyInput{Name: "feedback"},
		},
		{
			name: "too many questions",
			input: SurveyInput{Name: "feedback", Questions: []SurveyQuestionInput{
				{Text: "q1", Options: []string{"1"}},
				{Text: "q2", Options: []string{"1"}},
				{Text: "q3", Options: []string{"1"}},
				{Text: "q4", Options: []string{"1"}},
				{Text: "q5", Options: []string{"1"}},
				{Text: "q6", Options: []string{"1"}},
			}},
		},
		{
			name: "question without options",
			input: SurveyInput{Name: "feedback", Questions: []SurveyQuestionInput{
				{Text: "q1"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateSurvey(tt.input)
			assert.ErrorIs(t, err, entities.ErrValidation)
		})
	}
}

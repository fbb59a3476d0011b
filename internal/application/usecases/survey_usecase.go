package usecases

import (
	"fmt"
	"time"

	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"github.com/ankitcloud202/alramzbot/internal/domain/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SurveyQuestionInput is one question of a survey definition.
type SurveyQuestionInput struct {
	Text    string   `json:"text" validate:"required"`
	Options []string `json:"options" validate:"required,min=1,dive,required"`
}

// SurveyInput is the survey definition payload. The IVR flow has five
// question slots, hence the upper bound.
type SurveyInput struct {
	Name      string                `json:"name" validate:"required"`
	Questions []SurveyQuestionInput `json:"questions" validate:"required,min=1,max=5,dive"`
}

// SurveyUseCase implements the survey definition operations.
type SurveyUseCase struct {
	surveyRepo *repositories.SurveyRepository
	validate   *validator.Validate
}

// NewSurveyUseCase creates a new SurveyUseCase.
func NewSurveyUseCase(surveyRepo *repositories.SurveyRepository) *SurveyUseCase {
	return &SurveyUseCase{
		surveyRepo: surveyRepo,
		validate:   validator.New(),
	}
}

// CreateSurvey validates and stores a survey definition.
func (u *SurveyUseCase) CreateSurvey(input SurveyInput) (*entities.Survey, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrValidation, err)
	}

	now := time.Now()
	survey := &entities.Survey{
		ID:        uuid.NewString(),
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for qi, q := range input.Questions {
		question := entities.SurveyQuestion{
			ID:       uuid.NewString(),
			SurveyID: survey.ID,
			Position: qi + 1,
			Text:     q.Text,
		}
		for oi, text := range q.Options {
			question.Options = append(question.Options, entities.QuestionOption{
				ID:         uuid.NewString(),
				QuestionID: question.ID,
				Position:   oi + 1,
				Text:       text,
			})
		}
		survey.Questions = append(survey.Questions, question)
	}

	if err := u.surveyRepo.CreateSurvey(survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// GetSurveys returns stored surveys with pagination.
func (u *SurveyUseCase) GetSurveys(page, limit int) ([]entities.Survey, int64, error) {
	return u.surveyRepo.GetSurveys(page, limit)
}

// GetSurveyByID returns one survey with its questions and options.
func (u *SurveyUseCase) GetSurveyByID(id string) (*entities.Survey, error) {
	return u.surveyRepo.GetSurveyByID(id)
}

// DeleteSurvey removes a survey definition.
func (u *SurveyUseCase) DeleteSurvey(id string) error {
	return u.surveyRepo.DeleteSurvey(id)
}

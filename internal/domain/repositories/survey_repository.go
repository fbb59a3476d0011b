package repositories

import (
	"fmt"

	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"gorm.io/gorm"
)

// SurveyRepository persists operator-defined survey scripts.
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new SurveyRepository.
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{
		db: db,
	}
}

// CreateSurvey stores a survey with its questions and options.
func (r *SurveyRepository) CreateSurvey(survey *entities.Survey) error {
	if err := r.db.Create(survey).Error; err != nil {
		return fmt.Errorf("failed to create survey: %w", err)
	}
	return nil
}

// GetSurveys returns surveys ordered most recent first, with pagination.
func (r *SurveyRepository) GetSurveys(page, limit int) ([]entities.Survey, int64, error) {
	var surveys []entities.Survey
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.Model(&entities.Survey{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count surveys: %w", err)
	}

	offset := (page - 1) * limit
	err := query.
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&surveys).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list surveys: %w", err)
	}

	return surveys, total, nil
}

// GetSurveyByID returns one survey with questions and options in ask order.
func (r *SurveyRepository) GetSurveyByID(id string) (*entities.Survey, error) {
	var survey entities.Survey
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&survey, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// DeleteSurvey removes a survey; questions and options cascade.
func (r *SurveyRepository) DeleteSurvey(id string) error {
	result := r.db.Delete(&entities.Survey{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete survey: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

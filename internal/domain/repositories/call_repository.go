package repositories

import (
	"fmt"

	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"gorm.io/gorm"
)

// CallRepository persists the outbound call log.
type CallRepository struct {
	db *gorm.DB
}

// NewCallRepository creates a new CallRepository.
func NewCallRepository(db *gorm.DB) *CallRepository {
	return &CallRepository{
		db: db,
	}
}

// CreateLogs stores one log row per dialed number.
func (r *CallRepository) CreateLogs(logs []entities.CallLog) error {
	if len(logs) == 0 {
		return nil
	}
	if err := r.db.Create(&logs).Error; err != nil {
		return fmt.Errorf("failed to record call logs: %w", err)
	}
	return nil
}

// GetCalls returns call log entries, most recent first, with pagination.
func (r *CallRepository) GetCalls(page, limit int) ([]entities.CallLog, int64, error) {
	var calls []entities.CallLog
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	query := r.db.Model(&entities.CallLog{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count call logs: %w", err)
	}

	offset := (page - 1) * limit
	err := query.
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&calls).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list call logs: %w", err)
	}

	return calls, total, nil
}

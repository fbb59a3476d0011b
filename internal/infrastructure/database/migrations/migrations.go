package migrations

import (
	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for the locally owned tables. Survey
// responses live in the remote data store and are not migrated here.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Survey{},
		&entities.SurveyQuestion{},
		&entities.QuestionOption{},
		&entities.CallLog{},
	)
}

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_surveys_created_at ON surveys (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_survey_questions_survey_position ON survey_questions (survey_id, position)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_question_options_question_position ON question_options (question_id, position)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_call_logs_created_at ON call_logs (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_call_logs_status ON call_logs (status)").Error; err != nil {
		return err
	}
	return nil
}

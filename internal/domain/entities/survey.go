package entities

import (
	"time"
)

// Survey is an operator-defined survey script.
type Survey struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `json:"name" gorm:"column:name"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	Questions []SurveyQuestion `json:"questions,omitempty" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
}

// SurveyQuestion is a single question within a survey, in ask order.
type SurveyQuestion struct {
	ID       string `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	SurveyID string `json:"survey_id" gorm:"column:survey_id;type:uuid;index"`
	Position int    `json:"position" gorm:"column:position"`
	Text     string `json:"text" gorm:"column:text"`

	Options []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// QuestionOption is one selectable answer for a question.
type QuestionOption struct {
	ID         string `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	QuestionID string `json:"question_id" gorm:"column:question_id;type:uuid;index"`
	Position   int    `json:"position" gorm:"column:position"`
	Text       string `json:"text" gorm:"column:text"`
}

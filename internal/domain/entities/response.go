package entities

import "time"

// Questions is the fixed, ordered question set of the voice survey. The IVR
// flow asks exactly these five questions; attribute keys outside this set are
// discarded at the adapter boundary.
var Questions = []string{"Question1", "Question2", "Question3", "Question4", "Question5"}

// SurveyResponseRecord is one completed survey call, as stored by the remote
// data store. Records are read-only from this service's perspective.
type SurveyResponseRecord struct {
	ID            string            `json:"id"`
	CreatedAt     time.Time         `json:"created_at"`
	CustomerPhone string            `json:"customer_phone"`
	// Attributes maps a question key to the caller's answer as stored: a
	// rating digit "1".."5", a no-answer sentinel, or absent.
	Attributes map[string]string `json:"attributes"`
	// SentimentScore is produced by an external analysis step and displayed
	// as-is. Empty when the analysis did not run.
	SentimentScore string `json:"sentiment_score,omitempty"`
}

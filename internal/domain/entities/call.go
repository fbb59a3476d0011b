package entities

import "time"

// Call log statuses.
const (
	CallStatusSubmitted = "submitted"
	CallStatusFailed    = "failed"
)

// CallLog records one outbound call trigger for one phone number.
type CallLog struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	Status    string    `json:"status" gorm:"column:status"`
	Error     string    `json:"error,omitempty" gorm:"column:error"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

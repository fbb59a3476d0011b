package model

// Rating tiers used for badge colouring in the dashboard.
const (
	TierLow  = "low"
	TierMid  = "mid"
	TierHigh = "high"
)

// ResponseRow is the table projection of one survey response.
type ResponseRow struct {
	ID             string  `json:"id"`
	DateDisplay    string  `json:"date"`
	Phone          string  `json:"phone"`
	Q1             string  `json:"q1"`
	Q2             string  `json:"q2"`
	Q3             string  `json:"q3"`
	Q4             string  `json:"q4"`
	Q5             string  `json:"q5"`
	SentimentScore string  `json:"sentiment_score,omitempty"`
	AverageRating  float64 `json:"average_rating"`
	AverageDisplay string  `json:"average_display"`
	Tier           string  `json:"tier"`
}

// RatingDistributionRow is one stacked-bar row: how many responses gave each
// rating value to a question.
type RatingDistributionRow struct {
	Question string `json:"question"`
	Rating1  int    `json:"rating_1"`
	Rating2  int    `json:"rating_2"`
	Rating3  int    `json:"rating_3"`
	Rating4  int    `json:"rating_4"`
	Rating5  int    `json:"rating_5"`
}

// MonthlyAverageRow is one line-chart point: per-question mean rating for a
// calendar month. Months are merged by name only, so data spanning multiple
// years collapses into twelve buckets at most.
type MonthlyAverageRow struct {
	Month     string  `json:"month"`
	Question1 float64 `json:"question_1"`
	Question2 float64 `json:"question_2"`
	Question3 float64 `json:"question_3"`
	Question4 float64 `json:"question_4"`
	Question5 float64 `json:"question_5"`
}

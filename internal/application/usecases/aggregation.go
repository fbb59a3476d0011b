package usecases

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ankitcloud202/alramzbot/internal/application/domain/model"
	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
)

// rowDateFormat matches the dashboard table, e.g. "Apr 8, 6:22 AM".
const rowDateFormat = "Jan 2, 3:04 PM"

// ratingScale are the answer values counted by the distribution histogram.
// Anything else (no-answer sentinel, absent key, out-of-range digit) falls
// into no bucket.
var ratingScale = []string{"1", "2", "3", "4", "5"}

// monthOrder is the canonical chart order for monthly averages.
var monthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ProjectRows maps each response record to its table row. Malformed
// per-record data degrades to the "N/A" average, never to an error.
func ProjectRows(records []entities.SurveyResponseRecord) []model.ResponseRow {
	rows := make([]model.ResponseRow, 0, len(records))
	for _, record := range records {
		avg, ok := averageRating(record.Attributes)

		display := "N/A"
		if ok {
			display = strconv.FormatFloat(avg, 'f', 1, 64)
		}

		rows = append(rows, model.ResponseRow{
			ID:             record.ID,
			DateDisplay:    record.CreatedAt.Format(rowDateFormat),
			Phone:          record.CustomerPhone,
			Q1:             record.Attributes["Question1"],
			Q2:             record.Attributes["Question2"],
			Q3:             record.Attributes["Question3"],
			Q4:             record.Attributes["Question4"],
			Q5:             record.Attributes["Question5"],
			SentimentScore: record.SentimentScore,
			AverageRating:  avg,
			AverageDisplay: display,
			Tier:           ratingTier(avg, ok),
		})
	}
	return rows
}

// averageRating returns the mean of the record's parseable integer ratings,
// rounded to 1 decimal place. ok is false when no question has a parseable
// rating; the returned average is then 0, which is a display fallback only
// and must never feed further arithmetic.
//
// Any string that parses as an integer counts here, including out-of-range
// values; only the distribution histogram enforces the 1-5 scale.
func averageRating(attributes map[string]string) (avg float64, ok bool) {
	sum := 0
	count := 0
	for _, question := range entities.Questions {
		value, present := attributes[question]
		if !present {
			continue
		}
		rating, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		sum += rating
		count++
	}
	if count == 0 {
		return 0, false
	}
	return math.Round(float64(sum)/float64(count)*10) / 10, true
}

// ratingTier buckets an average rating for badge colouring. The "N/A" case
// renders with the mid tier by convention.
func ratingTier(avg float64, ok bool) string {
	switch {
	case !ok:
		return model.TierMid
	case avg < 3:
		return model.TierLow
	case avg > 4:
		return model.TierHigh
	default:
		return model.TierMid
	}
}

// Distribution builds the per-question histogram of rating values "1".."5"
// across the whole record set, by exact string match against the stored
// attribute value.
func Distribution(records []entities.SurveyResponseRecord) []model.RatingDistributionRow {
	counts := make(map[string][]int, len(entities.Questions))
	for _, question := range entities.Questions {
		counts[question] = make([]int, len(ratingScale))
	}

	for _, record := range records {
		for _, question := range entities.Questions {
			value, present := record.Attributes[question]
			if !present {
				continue
			}
			for i, rating := range ratingScale {
				if value == rating {
					counts[question][i]++
					break
				}
			}
		}
	}

	rows := make([]model.RatingDistributionRow, 0, len(entities.Questions))
	for i, question := range entities.Questions {
		c := counts[question]
		rows = append(rows, model.RatingDistributionRow{
			Question: fmt.Sprintf("Q%d", i+1),
			Rating1:  c[0],
			Rating2:  c[1],
			Rating3:  c[2],
			Rating4:  c[3],
			Rating5:  c[4],
		})
	}
	return rows
}

type monthAccumulator struct {
	sums   [5]float64
	counts [5]int
}

// MonthlyAverages groups records by calendar month name and averages each
// question's parseable ratings, rounded to 2 decimal places. Output follows
// canonical month order; months with no records are absent, a question with
// no samples in a present month reads 0.
func MonthlyAverages(records []entities.SurveyResponseRecord) []model.MonthlyAverageRow {
	byMonth := make(map[string]*monthAccumulator)

	for _, record := range records {
		month := record.CreatedAt.Month().String()[:3]
		accum, exists := byMonth[month]
		if !exists {
			accum = &monthAccumulator{}
			byMonth[month] = accum
		}

		for i, question := range entities.Questions {
			value, present := record.Attributes[question]
			if !present {
				continue
			}
			rating, err := strconv.ParseFloat(value, 64)
			if err != nil || math.IsNaN(rating) {
				continue
			}
			accum.sums[i] += rating
			accum.counts[i]++
		}
	}

	rows := make([]model.MonthlyAverageRow, 0, len(byMonth))
	for _, month := range monthOrder {
		accum, exists := byMonth[month]
		if !exists {
			continue
		}

		var averages [5]float64
		for i := range entities.Questions {
			if accum.counts[i] > 0 {
				averages[i] = math.Round(accum.sums[i]/float64(accum.counts[i])*100) / 100
			}
		}

		rows = append(rows, model.MonthlyAverageRow{
			Month:     month,
			Question1: averages[0],
			Question2: averages[1],
			Question3: averages[2],
			Question4: averages[3],
			Question5: averages[4],
		})
	}
	return rows
}

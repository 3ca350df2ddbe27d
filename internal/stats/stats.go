// Package stats computes the admin dashboard's aggregate figures from a
// feedback collection: average rating, the weighted Adore Score, the monthly
// score series and per-project / per-client rating averages.
//
// All functions are pure: they never mutate the input slice, and the same
// collection always yields the same output.
package stats

import (
	"log/slog"
	"math"
	"sort"

	"github.com/adore/backend/internal/model"
)

// compositeWeight is the Adore Score multiplier applied to the average rating.
// The weighted score is not capped and can exceed the nominal 1-5 rating range.
const compositeWeight = 1.2

// Summary is the dashboard's headline figures.
type Summary struct {
	Total          int     `json:"total"`
	Reviewed       int     `json:"reviewed"`
	Pending        int     `json:"pending"`
	AverageRating  float64 `json:"average_rating"`
	CompositeScore float64 `json:"composite_score"`
}

// MonthlyPoint is one month's mean Adore Score.
type MonthlyPoint struct {
	Month string  `json:"month"` // "YYYY-MM"
	Score float64 `json:"score"`
}

// AverageRating returns the mean rating rounded to one decimal place.
// An empty collection averages to 0, not an error.
func AverageRating(items []*model.Feedback) float64 {
	if len(items) == 0 {
		return 0
	}
	total := 0
	for _, f := range items {
		total += f.Rating
	}
	return round1(float64(total) / float64(len(items)))
}

// CompositeScore returns the Adore Score: the rounded average rating times
// the composite weight, rounded again to one decimal place.
func CompositeScore(items []*model.Feedback) float64 {
	if len(items) == 0 {
		return 0
	}
	return round1(AverageRating(items) * compositeWeight)
}

// MonthlySeries buckets feedback by calendar month of CreatedAt and returns
// each month's mean weighted rating, ascending by month key. Months with no
// feedback are omitted rather than zero-filled. Records without a timestamp
// are skipped and logged, never fatal.
func MonthlySeries(items []*model.Feedback) []MonthlyPoint {
	type bucket struct {
		total float64
		count int
	}
	buckets := make(map[string]*bucket)
	for _, f := range items {
		if f.CreatedAt.IsZero() {
			slog.Warn("feedback without timestamp skipped in monthly series", "id", f.ID)
			continue
		}
		month := f.CreatedAt.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		b.total += float64(f.Rating) * compositeWeight
		b.count++
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	// Lexicographic order on "YYYY-MM" matches chronological order.
	sort.Strings(months)

	series := make([]MonthlyPoint, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		series = append(series, MonthlyPoint{Month: m, Score: round1(b.total / float64(b.count))})
	}
	return series
}

// ProjectAverages maps each project id to the mean rating of feedback
// referencing it. Projects with no feedback are absent from the map, so a
// missing key means "no ratings yet" rather than zero.
func ProjectAverages(items []*model.Feedback) map[string]float64 {
	return averagesBy(items, func(f *model.Feedback) string { return f.ProjectID })
}

// ClientAverages maps each client id to the mean rating of feedback
// referencing it, with the same absence semantics as ProjectAverages.
func ClientAverages(items []*model.Feedback) map[string]float64 {
	return averagesBy(items, func(f *model.Feedback) string { return f.ClientID })
}

// Summarize returns the dashboard's headline counts and scores.
func Summarize(items []*model.Feedback) Summary {
	reviewed := 0
	for _, f := range items {
		if f.Reviewed {
			reviewed++
		}
	}
	return Summary{
		Total:          len(items),
		Reviewed:       reviewed,
		Pending:        len(items) - reviewed,
		AverageRating:  AverageRating(items),
		CompositeScore: CompositeScore(items),
	}
}

func averagesBy(items []*model.Feedback, key func(*model.Feedback) string) map[string]float64 {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, f := range items {
		k := key(f)
		sums[k] += f.Rating
		counts[k]++
	}
	averages := make(map[string]float64, len(sums))
	for k, sum := range sums {
		averages[k] = round1(float64(sum) / float64(counts[k]))
	}
	return averages
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

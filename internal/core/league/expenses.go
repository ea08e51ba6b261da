package league

import (
	"math"
	"time"

	"gjb-leaguehub/internal/core/domain"
)

// ExpenseStatus classifies a round's per-person cost against the target band.
type ExpenseStatus string

const (
	ExpenseStatusAdequate     ExpenseStatus = "adequate"
	ExpenseStatusInsufficient ExpenseStatus = "insufficient"
	ExpenseStatusExcessive    ExpenseStatus = "excessive"
	ExpenseStatusNotAvailable ExpenseStatus = "n/a"
)

// ExpenseBand is the inclusive per-person target band plus the attendee-count
// fallback used when a round's attendee list is unknown.
type ExpenseBand struct {
	Min              int64 `json:"min"`
	Max              int64 `json:"max"`
	DefaultAttendees int   `json:"default_attendees"`
}

// RoundExpenseSummary is one round's expense rollup.
type RoundExpenseSummary struct {
	RoundID    uint             `json:"round_id"`
	Date       time.Time        `json:"date"`
	Total      int64            `json:"total"`
	Attendees  int              `json:"attendees"`
	PerPerson  int64            `json:"per_person"`
	Status     ExpenseStatus    `json:"status"`
	ByCategory map[string]int64 `json:"by_category"`
}

// SeasonExpenseSummary aggregates expenses across the season.
type SeasonExpenseSummary struct {
	Total              int64                 `json:"total"`
	RoundsWithExpenses int                   `json:"rounds_with_expenses"`
	AveragePerRound    int64                 `json:"average_per_round"`
	ByCategory         map[string]int64      `json:"by_category"`
	Rounds             []RoundExpenseSummary `json:"rounds"`
}

// SummarizeRoundExpenses totals a round's line items and derives the
// per-person cost (standard rounding) and its band status. A zero total is
// "n/a", not a failure.
func SummarizeRoundExpenses(r domain.Round, band ExpenseBand) RoundExpenseSummary {
	summary := RoundExpenseSummary{
		RoundID:    r.ID,
		Date:       r.Date,
		Attendees:  len(r.Attendees),
		ByCategory: make(map[string]int64),
	}
	if summary.Attendees == 0 {
		summary.Attendees = band.DefaultAttendees
	}
	for _, e := range r.Expenses {
		summary.Total += e.Amount
		summary.ByCategory[e.Category] += e.Amount
	}
	if summary.Total == 0 {
		summary.Status = ExpenseStatusNotAvailable
		return summary
	}
	summary.PerPerson = int64(math.Round(float64(summary.Total) / float64(summary.Attendees)))
	switch {
	case summary.PerPerson < band.Min:
		summary.Status = ExpenseStatusInsufficient
	case summary.PerPerson > band.Max:
		summary.Status = ExpenseStatusExcessive
	default:
		summary.Status = ExpenseStatusAdequate
	}
	return summary
}

// SummarizeSeasonExpenses rolls the per-round summaries into season totals:
// overall total, average total per round that had any expense, category sums,
// and the per-round trend (rounds without expenses are skipped).
func SummarizeSeasonExpenses(rounds []domain.Round, band ExpenseBand) SeasonExpenseSummary {
	season := SeasonExpenseSummary{ByCategory: make(map[string]int64)}
	for _, r := range rounds {
		if len(r.Expenses) == 0 {
			continue
		}
		rs := SummarizeRoundExpenses(r, band)
		season.Total += rs.Total
		season.RoundsWithExpenses++
		for cat, amount := range rs.ByCategory {
			season.ByCategory[cat] += amount
		}
		season.Rounds = append(season.Rounds, rs)
	}
	if season.RoundsWithExpenses > 0 {
		season.AveragePerRound = int64(math.Round(float64(season.Total) / float64(season.RoundsWithExpenses)))
	}
	return season
}

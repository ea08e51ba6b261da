package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gjb-leaguehub/internal/core/domain"
)

var charterBand = ExpenseBand{Min: 100_000, Max: 150_000, DefaultAttendees: 12}

func expenseRound(id uint, attendees []uint, expenses []domain.Expense) domain.Round {
	r := round(id, date(3, 17), attendees, nil)
	r.Expenses = expenses
	return r
}

func TestSummarizeRoundExpenses(t *testing.T) {
	r := expenseRound(1, []uint{1, 2, 3, 4, 5, 6, 7, 8}, []domain.Expense{
		{Category: "food", ItemName: "dinner", Amount: 500_000},
		{Category: "cart", ItemName: "cart fee", Amount: 300_000},
		{Category: "caddie", ItemName: "caddie fee", Amount: 200_000},
	})

	s := SummarizeRoundExpenses(r, charterBand)
	assert.Equal(t, int64(1_000_000), s.Total)
	assert.Equal(t, 8, s.Attendees)
	assert.Equal(t, int64(125_000), s.PerPerson)
	assert.Equal(t, ExpenseStatusAdequate, s.Status)
	assert.Equal(t, int64(500_000), s.ByCategory["food"])
}

func TestSummarizeRoundExpenses_StatusBands(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		want   ExpenseStatus
	}{
		{"below the band", 100_000, ExpenseStatusInsufficient}, // 12,500/person
		{"bottom edge inclusive", 800_000, ExpenseStatusAdequate},
		{"top edge inclusive", 1_200_000, ExpenseStatusAdequate},
		{"above the band", 1_600_000, ExpenseStatusExcessive}, // 200,000/person
	}
	attendees := []uint{1, 2, 3, 4, 5, 6, 7, 8}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := expenseRound(1, attendees, []domain.Expense{
				{Category: "food", ItemName: "x", Amount: tt.total},
			})
			assert.Equal(t, tt.want, SummarizeRoundExpenses(r, charterBand).Status)
		})
	}
}

func TestSummarizeRoundExpenses_ZeroTotal(t *testing.T) {
	r := expenseRound(1, []uint{1, 2}, nil)
	s := SummarizeRoundExpenses(r, charterBand)
	assert.Equal(t, ExpenseStatusNotAvailable, s.Status)
	assert.Zero(t, s.PerPerson)
}

func TestSummarizeRoundExpenses_AttendeeFallback(t *testing.T) {
	r := expenseRound(1, nil, []domain.Expense{
		{Category: "food", ItemName: "x", Amount: 1_200_000},
	})
	s := SummarizeRoundExpenses(r, charterBand)
	assert.Equal(t, 12, s.Attendees)
	assert.Equal(t, int64(100_000), s.PerPerson)
}

func TestSummarizeRoundExpenses_StandardRounding(t *testing.T) {
	r := expenseRound(1, []uint{1, 2, 3}, []domain.Expense{
		{Category: "food", ItemName: "x", Amount: 100},
	})
	// 100/3 = 33.33 → 33
	assert.Equal(t, int64(33), SummarizeRoundExpenses(r, charterBand).PerPerson)

	r.Expenses[0].Amount = 200
	// 200/3 = 66.67 → 67
	assert.Equal(t, int64(67), SummarizeRoundExpenses(r, charterBand).PerPerson)
}

func TestSummarizeSeasonExpenses(t *testing.T) {
	rounds := []domain.Round{
		expenseRound(1, []uint{1, 2, 3, 4, 5, 6, 7, 8}, []domain.Expense{
			{Category: "food", ItemName: "dinner", Amount: 600_000},
			{Category: "prizes", ItemName: "awards", Amount: 400_000},
		}),
		expenseRound(2, []uint{1, 2, 3, 4}, nil), // no expenses: skipped
		expenseRound(3, []uint{1, 2, 3, 4, 5, 6, 7, 8}, []domain.Expense{
			{Category: "food", ItemName: "lunch", Amount: 500_000},
		}),
	}

	s := SummarizeSeasonExpenses(rounds, charterBand)
	assert.Equal(t, int64(1_500_000), s.Total)
	assert.Equal(t, 2, s.RoundsWithExpenses)
	assert.Equal(t, int64(750_000), s.AveragePerRound)
	assert.Equal(t, int64(1_100_000), s.ByCategory["food"])
	assert.Equal(t, int64(400_000), s.ByCategory["prizes"])
	require.Len(t, s.Rounds, 2)
	assert.Equal(t, uint(1), s.Rounds[0].RoundID)
	assert.Equal(t, uint(3), s.Rounds[1].RoundID)
}

func TestSummarizeSeasonExpenses_Empty(t *testing.T) {
	s := SummarizeSeasonExpenses(nil, charterBand)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.AveragePerRound)
	assert.Empty(t, s.Rounds)
}

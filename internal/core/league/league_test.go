package league

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gjb-leaguehub/internal/core/domain"
)

// date builds a fixture date inside the test season.
func date(month, day int) time.Time {
	return time.Date(2026, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func round(id uint, d time.Time, attendees []uint, scores []domain.Score) domain.Round {
	return domain.Round{ID: id, Date: d, Course: "태광CC", Attendees: attendees, Scores: scores}
}

// TestSeasonScenario walks one full round through every derivation:
// three members, one round, standings, hat, stats and dues flags.
func TestSeasonScenario(t *testing.T) {
	members := []domain.Member{
		{ID: 1, Name: "A", TargetScore: 85, Active: true},
		{ID: 2, Name: "B", TargetScore: 80, Active: true},
		{ID: 3, Name: "C", TargetScore: 90, Active: true},
	}
	r := round(1, date(3, 17), []uint{1, 2, 3}, []domain.Score{
		{MemberID: 1, Strokes: 82},
		{MemberID: 2, Strokes: 88},
		{MemberID: 3, Strokes: 95},
	})
	rounds := []domain.Round{r}

	rows := Standings(members, rounds)
	require.Len(t, rows, 3)
	assert.Equal(t, uint(1), rows[0].MemberID)
	assert.Equal(t, 25, rows[0].TotalPoints)
	assert.Equal(t, uint(2), rows[1].MemberID)
	assert.Equal(t, 18, rows[1].TotalPoints)
	assert.Equal(t, uint(3), rows[2].MemberID)
	assert.Equal(t, 15, rows[2].TotalPoints)

	worst, ok := WorstScorer(r.Scores)
	require.True(t, ok)
	assert.Equal(t, uint(3), worst.MemberID)
	assert.Equal(t, 95, worst.Strokes)

	// best score under target does NOT auto-set the achievement flag;
	// the ledger only reports eligibility.
	dues := Dues(members, rounds, DuesPolicy{DuesAmount: 1_500_000, GoalRefund: 500_000})
	require.Len(t, dues.Rows, 3)
	a := dues.Rows[0]
	assert.True(t, a.RefundEligible, "A's best 82 meets target 85")
	assert.False(t, a.GoalAchieved, "achievement stays admin-toggled")
	assert.Zero(t, dues.TotalRefund)
}

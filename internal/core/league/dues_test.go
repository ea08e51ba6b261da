package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gjb-leaguehub/internal/core/domain"
)

func TestDues_Totals(t *testing.T) {
	members := []domain.Member{
		{ID: 1, TargetScore: 85, Active: true, DuesPaid: true, GoalAchieved: true},
		{ID: 2, TargetScore: 80, Active: true, DuesPaid: true},
		{ID: 3, TargetScore: 90, Active: true},
		{ID: 4, TargetScore: 95, Active: false, DuesPaid: true}, // inactive, excluded
	}
	policy := DuesPolicy{DuesAmount: 1_500_000, GoalRefund: 500_000}

	s := Dues(members, nil, policy)
	require.Len(t, s.Rows, 3)
	assert.Equal(t, int64(3_000_000), s.TotalCollected)
	assert.Equal(t, int64(500_000), s.TotalRefund)
}

func TestDues_RefundEligibilityHint(t *testing.T) {
	members := []domain.Member{{ID: 1, TargetScore: 85, Active: true}}
	rounds := []domain.Round{
		round(1, date(3, 17), []uint{1}, []domain.Score{{MemberID: 1, Strokes: 85}}),
	}

	s := Dues(members, rounds, DuesPolicy{DuesAmount: 1_500_000, GoalRefund: 500_000})
	require.Len(t, s.Rows, 1)
	assert.True(t, s.Rows[0].RefundEligible, "target met exactly counts")
	assert.False(t, s.Rows[0].GoalAchieved)

	// no scores yet: not eligible, no crash
	s = Dues(members, nil, DuesPolicy{})
	assert.False(t, s.Rows[0].RefundEligible)
}

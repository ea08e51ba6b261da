package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gjb-leaguehub/internal/core/domain"
)

func TestWorstScorer_TieBreak(t *testing.T) {
	// A and C tie on the max score; the stable-sort-then-last rule hands the
	// hat to the later-entered one, C
	worst, ok := WorstScorer([]domain.Score{
		{MemberID: 1, Strokes: 90}, // A
		{MemberID: 2, Strokes: 85}, // B
		{MemberID: 3, Strokes: 90}, // C
	})
	require.True(t, ok)
	assert.Equal(t, uint(3), worst.MemberID)
	assert.Equal(t, 90, worst.Strokes)
}

func TestWorstScorer_Empty(t *testing.T) {
	_, ok := WorstScorer(nil)
	assert.False(t, ok)
}

func TestHatHistory_SkipsUnscoredRounds(t *testing.T) {
	rounds := []domain.Round{
		round(1, date(3, 17), []uint{1, 2}, []domain.Score{
			{MemberID: 1, Strokes: 82},
			{MemberID: 2, Strokes: 95},
		}),
		round(2, date(4, 21), []uint{1, 2}, nil), // rained out, no scores
		round(3, date(5, 19), []uint{1, 2}, []domain.Score{
			{MemberID: 2, Strokes: 84},
			{MemberID: 1, Strokes: 97},
		}),
	}

	events := HatHistory(rounds)
	require.Len(t, events, 2)
	assert.Equal(t, HatEvent{RoundID: 1, Date: date(3, 17), HolderID: 2, Score: 95}, events[0])
	assert.Equal(t, HatEvent{RoundID: 3, Date: date(5, 19), HolderID: 1, Score: 97}, events[1])
}

func TestHatCounts_RankedDescending(t *testing.T) {
	events := []HatEvent{
		{RoundID: 1, HolderID: 2, Score: 95},
		{RoundID: 2, HolderID: 1, Score: 97},
		{RoundID: 3, HolderID: 2, Score: 93},
		{RoundID: 4, HolderID: 3, Score: 99},
	}
	counts := HatCounts(events)
	require.Len(t, counts, 3)
	assert.Equal(t, HatCount{MemberID: 2, Times: 2}, counts[0])
	// equal counts fall back to member id for a stable ordering
	assert.Equal(t, HatCount{MemberID: 1, Times: 1}, counts[1])
	assert.Equal(t, HatCount{MemberID: 3, Times: 1}, counts[2])
}

func TestHatCounts_Empty(t *testing.T) {
	assert.Empty(t, HatCounts(nil))
}

package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gjb-leaguehub/internal/core/domain"
)

func fixedIntn(pick int) func(int) int {
	return func(n int) int { return pick % n }
}

func avg(v float64) *float64 { return &v }

func TestRecommendAwards_MostImproved(t *testing.T) {
	ranked := []RankedScore{
		{MemberID: 1, Strokes: 80, Rank: 1, Points: 25},
		{MemberID: 2, Strokes: 85, Rank: 2, Points: 18},
		{MemberID: 3, Strokes: 90, Rank: 3, Points: 15},
	}
	stats := map[uint]MemberStats{
		1: {MemberID: 1, Average: avg(83)},  // gained 3
		2: {MemberID: 2, Average: avg(93)},  // gained 8 — biggest gain
		3: {MemberID: 3, Average: nil},      // no prior average, skipped
	}

	rec := RecommendAwards(ranked, stats, nil, nil, map[uint]string{}, fixedIntn(0))
	require.NotNil(t, rec.MostImproved)
	assert.Equal(t, uint(2), rec.MostImproved.MemberID)
	assert.Equal(t, 8.0, rec.MostImproved.Improvement)
}

func TestRecommendAwards_MostImprovedRequiresActualGain(t *testing.T) {
	ranked := []RankedScore{{MemberID: 1, Strokes: 90, Rank: 1, Points: 25}}
	stats := map[uint]MemberStats{1: {MemberID: 1, Average: avg(88)}} // got worse

	rec := RecommendAwards(ranked, stats, nil, nil, map[uint]string{}, fixedIntn(0))
	assert.Nil(t, rec.MostImproved)
}

func TestRecommendAwards_HandicapImproved(t *testing.T) {
	history := []domain.Round{
		round(1, date(3, 17), []uint{1, 2}, []domain.Score{
			{MemberID: 1, Strokes: 95}, // first ever
			{MemberID: 2, Strokes: 84},
		}),
		round(2, date(4, 21), []uint{1}, []domain.Score{
			{MemberID: 1, Strokes: 88}, // later, must not replace the baseline
		}),
	}
	ranked := []RankedScore{
		{MemberID: 1, Strokes: 85, Rank: 1, Points: 25}, // 95-85 = +10
		{MemberID: 2, Strokes: 86, Rank: 2, Points: 18}, // 84-86 = -2
	}

	rec := RecommendAwards(ranked, nil, history, nil, map[uint]string{}, fixedIntn(0))
	require.NotNil(t, rec.HandicapImproved)
	assert.Equal(t, uint(1), rec.HandicapImproved.MemberID)
	assert.Equal(t, 10.0, rec.HandicapImproved.Improvement)
}

func TestRecommendAwards_LuckyDrawExclusions(t *testing.T) {
	ranked := []RankedScore{
		{MemberID: 1, Strokes: 80, Rank: 1, Points: 25},
		{MemberID: 2, Strokes: 82, Rank: 2, Points: 18},
		{MemberID: 3, Strokes: 84, Rank: 3, Points: 15},
		{MemberID: 4, Strokes: 88, Rank: 4, Points: 12},
		{MemberID: 5, Strokes: 91, Rank: 5, Points: 10},
	}
	names := map[uint]string{1: "A", 2: "B", 3: "C", 4: "D", 5: "E"}
	excluded := map[string]bool{"D": true} // D already won something

	// podium (1-3) and D are out; only E remains, whatever the draw says
	rec := RecommendAwards(ranked, nil, nil, excluded, names, fixedIntn(3))
	require.NotNil(t, rec.LuckyDraw)
	assert.Equal(t, uint(5), rec.LuckyDraw.MemberID)
}

func TestRecommendAwards_LuckyDrawNoCandidates(t *testing.T) {
	ranked := []RankedScore{
		{MemberID: 1, Strokes: 80, Rank: 1, Points: 25},
		{MemberID: 2, Strokes: 82, Rank: 2, Points: 18},
	}
	rec := RecommendAwards(ranked, nil, nil, nil, map[uint]string{}, fixedIntn(0))
	assert.Nil(t, rec.LuckyDraw, "everyone is on the podium")
}

func TestRecommendAwards_PinnedDraw(t *testing.T) {
	ranked := []RankedScore{
		{MemberID: 1, Strokes: 80, Rank: 1, Points: 25},
		{MemberID: 2, Strokes: 82, Rank: 2, Points: 18},
		{MemberID: 3, Strokes: 84, Rank: 3, Points: 15},
		{MemberID: 4, Strokes: 88, Rank: 4, Points: 12},
		{MemberID: 5, Strokes: 91, Rank: 5, Points: 10},
		{MemberID: 6, Strokes: 94, Rank: 6, Points: 8},
	}
	names := map[uint]string{4: "D", 5: "E", 6: "F"}

	rec := RecommendAwards(ranked, nil, nil, nil, names, fixedIntn(1))
	require.NotNil(t, rec.LuckyDraw)
	assert.Equal(t, uint(5), rec.LuckyDraw.MemberID, "pool is [D E F], pinned draw picks index 1")
}

func TestValidateAwardWinner(t *testing.T) {
	attendees := map[string]bool{"A": true, "B": true}
	existing := []domain.Award{{TypeCode: "NEAREST", WinnerName: "A"}}

	tests := []struct {
		name    string
		winner  string
		wantErr error
	}{
		{"new winner accepted", "B", nil},
		{"duplicate winner rejected", "A", domain.ErrDuplicateAwardWinner},
		{"non-attendee rejected", "Z", domain.ErrAwardWinnerNotAttendee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAwardWinner(tt.winner, existing, attendees)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

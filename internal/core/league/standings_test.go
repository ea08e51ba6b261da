package league

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gjb-leaguehub/internal/core/domain"
)

func TestRankScores_SequentialRanksOnTies(t *testing.T) {
	// equal stroke counts are not merged: stable sort keeps insertion order,
	// ranks stay strictly sequential
	ranked := RankScores([]domain.Score{
		{MemberID: 1, Strokes: 90},
		{MemberID: 2, Strokes: 85},
		{MemberID: 3, Strokes: 90},
	})
	require.Len(t, ranked, 3)
	assert.Equal(t, RankedScore{MemberID: 2, Strokes: 85, Rank: 1, Points: 25}, ranked[0])
	assert.Equal(t, RankedScore{MemberID: 1, Strokes: 90, Rank: 2, Points: 18}, ranked[1])
	assert.Equal(t, RankedScore{MemberID: 3, Strokes: 90, Rank: 3, Points: 15}, ranked[2])
}

func TestRankScores_DoesNotMutateInput(t *testing.T) {
	scores := []domain.Score{
		{MemberID: 1, Strokes: 99},
		{MemberID: 2, Strokes: 80},
	}
	RankScores(scores)
	assert.Equal(t, uint(1), scores[0].MemberID, "input order must survive")
}

func TestStandings_Accumulation(t *testing.T) {
	members := []domain.Member{
		{ID: 1, Active: true}, {ID: 2, Active: true}, {ID: 3, Active: true},
	}
	rounds := []domain.Round{
		round(1, date(3, 17), []uint{1, 2, 3}, []domain.Score{
			{MemberID: 1, Strokes: 82},
			{MemberID: 2, Strokes: 88},
			{MemberID: 3, Strokes: 95},
		}),
		round(2, date(4, 21), []uint{1, 2, 3}, []domain.Score{
			{MemberID: 2, Strokes: 84},
			{MemberID: 1, Strokes: 86},
			{MemberID: 3, Strokes: 91},
		}),
	}

	rows := Standings(members, rounds)
	require.Len(t, rows, 3)

	// 1: 25+18=43, one win; 2: 18+25=43, one win; tie falls through to
	// podiums (equal) then member id
	assert.Equal(t, uint(1), rows[0].MemberID)
	assert.Equal(t, 43, rows[0].TotalPoints)
	assert.Equal(t, uint(2), rows[1].MemberID)
	assert.Equal(t, 43, rows[1].TotalPoints)
	assert.Equal(t, uint(3), rows[2].MemberID)
	assert.Equal(t, 30, rows[2].TotalPoints)

	wantHistory := []HistoryEntry{
		{RoundID: 1, Date: date(3, 17), Rank: 1, Points: 25, Score: 82},
		{RoundID: 2, Date: date(4, 21), Rank: 2, Points: 18, Score: 86},
	}
	if diff := cmp.Diff(wantHistory, rows[0].History); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

// TestStandings_TotalsMatchHistory checks the consistency invariants: totals,
// wins and podiums must always be recomputable from the history entries.
func TestStandings_TotalsMatchHistory(t *testing.T) {
	members := []domain.Member{
		{ID: 1, Active: true}, {ID: 2, Active: true}, {ID: 3, Active: true}, {ID: 4, Active: true},
	}
	rounds := []domain.Round{
		round(1, date(3, 17), []uint{1, 2, 3, 4}, []domain.Score{
			{MemberID: 1, Strokes: 82}, {MemberID: 2, Strokes: 88},
			{MemberID: 3, Strokes: 95}, {MemberID: 4, Strokes: 79},
		}),
		round(2, date(4, 21), []uint{1, 2, 4}, []domain.Score{
			{MemberID: 4, Strokes: 90}, {MemberID: 2, Strokes: 83},
		}),
		round(3, date(5, 19), []uint{1, 3}, nil), // unscored round is ignored
	}

	for _, row := range Standings(members, rounds) {
		total, wins, podiums := 0, 0, 0
		for _, h := range row.History {
			total += h.Points
			if h.Rank == 1 {
				wins++
			}
			if h.Rank <= 3 {
				podiums++
			}
		}
		assert.Equal(t, total, row.TotalPoints, "member %d", row.MemberID)
		assert.Equal(t, wins, row.Wins, "member %d", row.MemberID)
		assert.Equal(t, podiums, row.Podiums, "member %d", row.MemberID)
		assert.Equal(t, len(row.History), row.RoundsCounted, "member %d", row.MemberID)
	}
}

func TestStandings_ThreeWayPointsTie(t *testing.T) {
	// equal totals, distinct wins: more wins sorts first; full order stays
	// deterministic
	members := []domain.Member{
		{ID: 1, Active: true}, {ID: 2, Active: true}, {ID: 3, Active: true},
	}
	// r1: 1st=m1(25), 2nd=m2(18), 3rd=m3(15)
	// r2: 1st=m3(25), 2nd=m2(18), 3rd=m1(15)
	// r3: 1st=m2(25), 2nd=m3(18), 3rd=m1(15)
	rounds := []domain.Round{
		round(1, date(3, 1), []uint{1, 2, 3}, []domain.Score{
			{MemberID: 1, Strokes: 80}, {MemberID: 2, Strokes: 85}, {MemberID: 3, Strokes: 90},
		}),
		round(2, date(4, 1), []uint{1, 2, 3}, []domain.Score{
			{MemberID: 3, Strokes: 80}, {MemberID: 2, Strokes: 85}, {MemberID: 1, Strokes: 90},
		}),
		round(3, date(5, 1), []uint{1, 2, 3}, []domain.Score{
			{MemberID: 2, Strokes: 80}, {MemberID: 3, Strokes: 85}, {MemberID: 1, Strokes: 90},
		}),
	}

	rows := Standings(members, rounds)
	require.Len(t, rows, 3)
	// m1=25+15+15=55(1 win), m2=18+18+25=61(1 win), m3=15+25+18=58(1 win)
	assert.Equal(t, []uint{2, 3, 1}, []uint{rows[0].MemberID, rows[1].MemberID, rows[2].MemberID})
}

func TestStandings_UnknownScorerIgnored(t *testing.T) {
	members := []domain.Member{{ID: 1, Active: true}}
	rounds := []domain.Round{
		round(1, date(3, 17), []uint{1}, []domain.Score{
			{MemberID: 99, Strokes: 70}, // not a member anymore
			{MemberID: 1, Strokes: 85},
		}),
	}
	rows := Standings(members, rounds)
	require.Len(t, rows, 1)
	// rank 2 behind the unknown scorer still resolves and scores
	assert.Equal(t, 18, rows[0].TotalPoints)
}

package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gjb-leaguehub/internal/core/domain"
)

func TestMemberStatistics(t *testing.T) {
	rounds := []domain.Round{
		round(1, date(3, 17), []uint{1, 2}, []domain.Score{
			{MemberID: 1, Strokes: 85},
			{MemberID: 2, Strokes: 92},
		}),
		round(2, date(4, 21), []uint{1, 2}, []domain.Score{
			{MemberID: 1, Strokes: 82},
		}),
		round(3, date(5, 19), []uint{1}, []domain.Score{
			{MemberID: 1, Strokes: 90},
		}),
	}

	stats := MemberStatistics(rounds, 1)
	require.NotNil(t, stats.Average)
	// (85+82+90)/3 = 85.666... → 85.7, half away from zero at one decimal
	assert.Equal(t, 85.7, *stats.Average)
	assert.Equal(t, 3, stats.RoundsPlayed)
	assert.Equal(t, []int{85, 82, 90}, stats.Scores)
	require.NotNil(t, stats.BestScore)
	assert.Equal(t, 82, *stats.BestScore)
}

func TestMemberStatistics_NoRounds(t *testing.T) {
	stats := MemberStatistics(nil, 7)
	assert.Nil(t, stats.Average)
	assert.Nil(t, stats.BestScore)
	assert.Zero(t, stats.RoundsPlayed)
	assert.Empty(t, stats.Scores)
}

func TestMemberStatistics_AttendedWithoutScore(t *testing.T) {
	// attending without a recorded score contributes nothing to stats
	rounds := []domain.Round{
		round(1, date(3, 17), []uint{1, 2}, []domain.Score{
			{MemberID: 2, Strokes: 88},
		}),
	}
	stats := MemberStatistics(rounds, 1)
	assert.Zero(t, stats.RoundsPlayed)
	assert.Nil(t, stats.Average)
}

func TestMemberStatistics_Rounding(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"exact mean", []int{80, 90}, 85},
		{"rounds up at half", []int{80, 81}, 80.5},
		{"one decimal", []int{79, 80, 80}, 79.7},
		{"single round", []int{101}, 101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rounds []domain.Round
			for i, s := range tt.scores {
				rounds = append(rounds, round(uint(i+1), date(3, i+1), []uint{1},
					[]domain.Score{{MemberID: 1, Strokes: s}}))
			}
			stats := MemberStatistics(rounds, 1)
			require.NotNil(t, stats.Average)
			assert.Equal(t, tt.want, *stats.Average)
		})
	}
}

func TestAllMemberStatistics(t *testing.T) {
	members := []domain.Member{{ID: 1, Active: true}, {ID: 2, Active: true}}
	rounds := []domain.Round{
		round(1, date(3, 17), []uint{1}, []domain.Score{{MemberID: 1, Strokes: 84}}),
	}
	all := AllMemberStatistics(members, rounds)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[1].RoundsPlayed)
	assert.Zero(t, all[2].RoundsPlayed)
}

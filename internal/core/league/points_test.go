package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsForRank(t *testing.T) {
	tests := []struct {
		name string
		rank int
		want int
	}{
		{"winner", 1, 25},
		{"runner up", 2, 18},
		{"third", 3, 15},
		{"fourth", 4, 12},
		{"fifth", 5, 10},
		{"sixth", 6, 8},
		{"seventh scores nothing", 7, 0},
		{"way down the field", 14, 0},
		{"zero rank", 0, 0},
		{"negative rank", -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsForRank(tt.rank))
		})
	}
}

func TestPointsForRank_Monotonic(t *testing.T) {
	// better ranks never score fewer points
	for r1 := 1; r1 < 6; r1++ {
		for r2 := r1 + 1; r2 <= 6; r2++ {
			assert.GreaterOrEqual(t, PointsForRank(r1), PointsForRank(r2),
				"rank %d should score at least as much as rank %d", r1, r2)
		}
	}
	for r := 7; r <= 30; r++ {
		assert.Zero(t, PointsForRank(r))
	}
}

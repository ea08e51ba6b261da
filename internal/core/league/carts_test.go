package league

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartGroups_SnakeDraftEightPlayers(t *testing.T) {
	ids := []uint{1, 2, 3, 4, 5, 6, 7, 8}
	averages := map[uint]float64{
		1: 70, 2: 75, 3: 80, 4: 85, 5: 90, 6: 95, 7: 100, 8: 105,
	}

	groups := CartGroups(ids, averages)
	require.Len(t, groups, 2)
	assert.Equal(t, []uint{1, 4, 5, 8}, groups[0]) // 70, 85, 90, 105
	assert.Equal(t, []uint{2, 3, 6, 7}, groups[1]) // 75, 80, 95, 100

	// both carts end up within a stroke of each other
	diff := math.Abs(GroupAverage(groups[0], averages) - GroupAverage(groups[1], averages))
	assert.LessOrEqual(t, diff, 1.0)
}

func TestCartGroups_MissingAverageDefaultsToWorst(t *testing.T) {
	ids := []uint{1, 2, 3, 4}
	averages := map[uint]float64{1: 80, 2: 85, 3: 90} // 4 has never been scored

	groups := CartGroups(ids, averages)
	require.Len(t, groups, 1)
	// unranked player sorts last at the default average of 100
	assert.Equal(t, []uint{1, 2, 3, 4}, groups[0])
}

func TestCartGroups_UnevenSplit(t *testing.T) {
	ids := []uint{1, 2, 3, 4, 5}
	averages := map[uint]float64{1: 70, 2: 75, 3: 80, 4: 85, 5: 90}

	groups := CartGroups(ids, averages)
	require.Len(t, groups, 2)
	// lap 0: g0←70, g1←75; lap 1: g1←80, g0←85; lap 2: g0←90
	assert.Equal(t, []uint{1, 4, 5}, groups[0])
	assert.Equal(t, []uint{2, 3}, groups[1])
}

func TestGroupAverage(t *testing.T) {
	averages := map[uint]float64{1: 80, 2: 90}
	assert.Equal(t, 85.0, GroupAverage([]uint{1, 2}, averages))
	assert.Equal(t, 90.0, GroupAverage([]uint{1, 3}, averages), "missing average counts as 100")
	assert.Zero(t, GroupAverage(nil, averages))
}

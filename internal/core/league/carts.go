package league

import "sort"

// DefaultSkillAverage is assumed for players without a recorded average.
// Deliberately high (worst) so unranked players don't tilt a group toward
// being favored.
const DefaultSkillAverage = 100.0

// cartSize is the target players per cart.
const cartSize = 4

// CartGroups splits the selected members into skill-balanced groups using a
// snake draft over averages sorted ascending (best first). For the player at
// sorted position i with g groups: lap = i/g, slot = i%g; even laps fill
// groups left to right, odd laps right to left, so no group always receives
// the weakest remainder of a pass.
//
// Callers must not invoke with fewer than 4 selected members.
func CartGroups(memberIDs []uint, averages map[uint]float64) [][]uint {
	type player struct {
		id  uint
		avg float64
	}
	players := make([]player, len(memberIDs))
	for i, id := range memberIDs {
		avg, ok := averages[id]
		if !ok {
			avg = DefaultSkillAverage
		}
		players[i] = player{id: id, avg: avg}
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].avg < players[j].avg
	})

	numGroups := (len(players) + cartSize - 1) / cartSize
	groups := make([][]uint, numGroups)
	for i, p := range players {
		lap := i / numGroups
		slot := i % numGroups
		target := slot
		if lap%2 == 1 {
			target = numGroups - 1 - slot
		}
		groups[target] = append(groups[target], p.id)
	}
	return groups
}

// GroupAverage computes the mean skill average of one group, for display.
func GroupAverage(group []uint, averages map[uint]float64) float64 {
	if len(group) == 0 {
		return 0
	}
	sum := 0.0
	for _, id := range group {
		avg, ok := averages[id]
		if !ok {
			avg = DefaultSkillAverage
		}
		sum += avg
	}
	return sum / float64(len(group))
}

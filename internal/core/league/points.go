// Package league implements the season aggregation engine: pure derivation
// functions that turn the raw snapshot (members, rounds) into standings,
// attendance compliance, hat-penalty history, cart partitions, award
// recommendations and expense summaries. Nothing in this package touches
// storage or holds mutable state between calls.
package league

// F1-style points table from the league charter: top six finishers score,
// everyone else gets zero.
var pointsTable = [...]int{25, 18, 15, 12, 10, 8}

// PointsForRank returns the championship points for a 1-based finish rank.
// Out-of-table ranks (including zero and negatives) are a valid zero-points
// case, not an error.
func PointsForRank(rank int) int {
	if rank < 1 || rank > len(pointsTable) {
		return 0
	}
	return pointsTable[rank-1]
}

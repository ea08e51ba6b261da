package league

import (
	"math"

	"gjb-leaguehub/internal/core/domain"
)

// MemberStats holds per-member score statistics derived from round history.
// Average and BestScore are nil when the member has no recorded scores.
type MemberStats struct {
	MemberID     uint     `json:"member_id"`
	Average      *float64 `json:"average"`
	RoundsPlayed int      `json:"rounds_played"`
	Scores       []int    `json:"scores"`
	BestScore    *int     `json:"best_score"`
}

// MemberStatistics collects the member's stroke counts across all rounds and
// derives average (one decimal, half away from zero), best score (minimum)
// and rounds played. Absence of data yields nil aggregates, never an error.
func MemberStatistics(rounds []domain.Round, memberID uint) MemberStats {
	stats := MemberStats{MemberID: memberID}
	for _, r := range rounds {
		for _, s := range r.Scores {
			if s.MemberID == memberID {
				stats.Scores = append(stats.Scores, s.Strokes)
			}
		}
	}
	stats.RoundsPlayed = len(stats.Scores)
	if stats.RoundsPlayed == 0 {
		return stats
	}

	sum := 0
	best := stats.Scores[0]
	for _, v := range stats.Scores {
		sum += v
		if v < best {
			best = v
		}
	}
	avg := math.Round(float64(sum)/float64(stats.RoundsPlayed)*10) / 10
	stats.Average = &avg
	stats.BestScore = &best
	return stats
}

// AllMemberStatistics computes stats for every member, keyed by member id.
func AllMemberStatistics(members []domain.Member, rounds []domain.Round) map[uint]MemberStats {
	out := make(map[uint]MemberStats, len(members))
	for _, m := range members {
		out[m.ID] = MemberStatistics(rounds, m.ID)
	}
	return out
}

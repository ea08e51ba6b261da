package league

import (
	"sort"
	"time"

	"gjb-leaguehub/internal/core/domain"
)

// HatEvent is one hand-over of the penalty hat: the worst scorer of a round.
type HatEvent struct {
	RoundID  uint      `json:"round_id"`
	Date     time.Time `json:"date"`
	HolderID uint      `json:"holder_id"`
	Score    int       `json:"score"`
}

// HatCount is a member's total times holding the hat.
type HatCount struct {
	MemberID uint `json:"member_id"`
	Times    int  `json:"times"`
}

// WorstScorer returns the round's worst scorer: stable ascending sort by
// stroke count, then the last element. Among equal maximum scores that makes
// the last-entered one "worst" — a charter quirk the tests pin down.
// ok is false when the score list is empty.
func WorstScorer(scores []domain.Score) (worst domain.Score, ok bool) {
	if len(scores) == 0 {
		return domain.Score{}, false
	}
	sorted := make([]domain.Score, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Strokes < sorted[j].Strokes
	})
	return sorted[len(sorted)-1], true
}

// HatHistory replays all rounds with scores in order and records the worst
// scorer of each. Independent of the live settings singleton: the full event
// sequence is always derivable from the rounds alone.
func HatHistory(rounds []domain.Round) []HatEvent {
	var events []HatEvent
	for _, r := range rounds {
		worst, ok := WorstScorer(r.Scores)
		if !ok {
			continue
		}
		events = append(events, HatEvent{
			RoundID:  r.ID,
			Date:     r.Date,
			HolderID: worst.MemberID,
			Score:    worst.Strokes,
		})
	}
	return events
}

// HatCounts tallies times-held per member, ranked descending by count
// (member id ascending on ties).
func HatCounts(events []HatEvent) []HatCount {
	tally := make(map[uint]int)
	for _, e := range events {
		tally[e.HolderID]++
	}
	counts := make([]HatCount, 0, len(tally))
	for id, n := range tally {
		counts = append(counts, HatCount{MemberID: id, Times: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Times != counts[j].Times {
			return counts[i].Times > counts[j].Times
		}
		return counts[i].MemberID < counts[j].MemberID
	})
	return counts
}

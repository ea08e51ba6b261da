package league

import (
	"gjb-leaguehub/internal/core/domain"
)

// AwardCandidate is one proposed award winner. Improvement carries the score
// delta that earned the proposal (zero for the lucky draw).
type AwardCandidate struct {
	MemberID    uint    `json:"member_id"`
	Strokes     int     `json:"strokes"`
	Improvement float64 `json:"improvement,omitempty"`
}

// Recommendations are the advisory award proposals for a round. Each is
// optional: nil means no valid candidate. Admin action turns a proposal into
// an actual award record.
type Recommendations struct {
	MostImproved     *AwardCandidate `json:"most_improved,omitempty"`
	HandicapImproved *AwardCandidate `json:"handicap_improved,omitempty"`
	LuckyDraw        *AwardCandidate `json:"lucky_draw,omitempty"`
}

// RecommendAwards proposes award winners for the round described by ranked
// (the round's rank-ordered scores). stats supplies prior averages, history
// the earlier rounds (for first-ever-score lookups; must not include the
// round being built), excludedNames the winner names already assigned this
// round, names the member-id-to-name mapping, and intn the randomness source
// for the lucky draw — injectable so tests can pin the outcome.
func RecommendAwards(
	ranked []RankedScore,
	stats map[uint]MemberStats,
	history []domain.Round,
	excludedNames map[string]bool,
	names map[uint]string,
	intn func(n int) int,
) Recommendations {
	var rec Recommendations

	// Most improved: biggest gain against own prior average, gains only.
	for _, rs := range ranked {
		st, ok := stats[rs.MemberID]
		if !ok || st.Average == nil {
			continue
		}
		gain := *st.Average - float64(rs.Strokes)
		if gain <= 0 {
			continue
		}
		if rec.MostImproved == nil || gain > rec.MostImproved.Improvement {
			rec.MostImproved = &AwardCandidate{MemberID: rs.MemberID, Strokes: rs.Strokes, Improvement: gain}
		}
	}

	// Handicap improved: biggest gain against the first score ever recorded.
	first := firstRecordedScores(history)
	for _, rs := range ranked {
		base, ok := first[rs.MemberID]
		if !ok {
			continue
		}
		gain := float64(base - rs.Strokes)
		if gain <= 0 {
			continue
		}
		if rec.HandicapImproved == nil || gain > rec.HandicapImproved.Improvement {
			rec.HandicapImproved = &AwardCandidate{MemberID: rs.MemberID, Strokes: rs.Strokes, Improvement: gain}
		}
	}

	// Lucky draw: uniform pick among scorers outside the podium who haven't
	// already won something this round.
	var pool []RankedScore
	for _, rs := range ranked {
		if rs.Rank <= 3 {
			continue
		}
		if excludedNames[names[rs.MemberID]] {
			continue
		}
		pool = append(pool, rs)
	}
	if len(pool) > 0 {
		pick := pool[intn(len(pool))]
		rec.LuckyDraw = &AwardCandidate{MemberID: pick.MemberID, Strokes: pick.Strokes}
	}

	return rec
}

// firstRecordedScores maps each member to their score from the
// chronologically earliest round (input order) they appear in.
func firstRecordedScores(rounds []domain.Round) map[uint]int {
	first := make(map[uint]int)
	for _, r := range rounds {
		for _, s := range r.Scores {
			if _, seen := first[s.MemberID]; !seen {
				first[s.MemberID] = s.Strokes
			}
		}
	}
	return first
}

// ValidateAwardWinner enforces per-round winner uniqueness and attendance:
// a name may win at most once per round and must belong to an attendee.
// Violations are validation errors, reported before anything is written.
func ValidateAwardWinner(winnerName string, existing []domain.Award, attendeeNames map[string]bool) error {
	if !attendeeNames[winnerName] {
		return domain.ErrAwardWinnerNotAttendee
	}
	for _, a := range existing {
		if a.WinnerName == winnerName {
			return domain.ErrDuplicateAwardWinner
		}
	}
	return nil
}

package league

import (
	"sort"
	"time"

	"gjb-leaguehub/internal/core/domain"
)

// RankedScore pairs a round score with its resolved finish rank and points.
type RankedScore struct {
	MemberID uint `json:"member_id"`
	Strokes  int  `json:"strokes"`
	Rank     int  `json:"rank"`
	Points   int  `json:"points"`
}

// RankScores resolves finish ranks for one round: stable ascending sort by
// stroke count, 1-based sequential ranks. Ties are NOT merged — equal stroke
// counts keep strictly sequential ranks in original insertion order. That is
// charter policy; change it here and the standings, hat and award engines all
// follow.
func RankScores(scores []domain.Score) []RankedScore {
	sorted := make([]domain.Score, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Strokes < sorted[j].Strokes
	})

	ranked := make([]RankedScore, len(sorted))
	for i, s := range sorted {
		rank := i + 1
		ranked[i] = RankedScore{
			MemberID: s.MemberID,
			Strokes:  s.Strokes,
			Rank:     rank,
			Points:   PointsForRank(rank),
		}
	}
	return ranked
}

// HistoryEntry is one round's outcome inside a member's standings history.
type HistoryEntry struct {
	RoundID uint      `json:"round_id"`
	Date    time.Time `json:"date"`
	Rank    int       `json:"rank"`
	Points  int       `json:"points"`
	Score   int       `json:"score"`
}

// StandingsRow is a member's cumulative season line.
type StandingsRow struct {
	MemberID      uint           `json:"member_id"`
	TotalPoints   int            `json:"total_points"`
	RoundsCounted int            `json:"rounds_counted"`
	Wins          int            `json:"wins"`
	Podiums       int            `json:"podiums"`
	History       []HistoryEntry `json:"history"`
}

// Standings computes the ranked season table. Rounds must arrive date
// ascending; history entries follow that processing order. The returned list
// covers every member — filtering to "played at least once" is the caller's
// concern.
//
// Ordering is an explicit total order: total points desc, then wins desc,
// then podiums desc, then member id asc. Points ties are therefore always
// broken deterministically, including 3-way ties.
func Standings(members []domain.Member, rounds []domain.Round) []StandingsRow {
	byID := make(map[uint]*StandingsRow, len(members))
	rows := make([]StandingsRow, len(members))
	for i, m := range members {
		rows[i] = StandingsRow{MemberID: m.ID}
		byID[m.ID] = &rows[i]
	}

	for _, r := range rounds {
		if len(r.Scores) == 0 {
			continue
		}
		for _, rs := range RankScores(r.Scores) {
			row, ok := byID[rs.MemberID]
			if !ok {
				// score for an unknown member, skip rather than fail
				continue
			}
			row.TotalPoints += rs.Points
			row.RoundsCounted++
			if rs.Rank == 1 {
				row.Wins++
			}
			if rs.Rank <= 3 {
				row.Podiums++
			}
			row.History = append(row.History, HistoryEntry{
				RoundID: r.ID,
				Date:    r.Date,
				Rank:    rs.Rank,
				Points:  rs.Points,
				Score:   rs.Strokes,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Podiums != b.Podiums {
			return a.Podiums > b.Podiums
		}
		return a.MemberID < b.MemberID
	})
	return rows
}

package services

import (
	"gjb-leaguehub/internal/adapters/persistence/models"
	"gjb-leaguehub/internal/core/domain"
)

// toDomainMember converts a persistence member to the engine type
func toDomainMember(m *models.Member) domain.Member {
	return domain.Member{
		ID:           m.ID,
		Name:         m.Name,
		TargetScore:  m.TargetScore,
		NextTarget:   m.NextTarget,
		Active:       m.IsActive,
		DuesPaid:     m.DuesPaid,
		GoalAchieved: m.GoalAchieved,
	}
}

// toDomainRound converts a persistence round to the engine type.
// Child rows arrive pre-ordered by seq from the repository, so the
// engine sees the same entry order the admin typed.
func toDomainRound(r *models.Round) domain.Round {
	round := domain.Round{
		ID:     r.ID,
		Date:   r.PlayedOn,
		Course: r.Course,
	}
	for _, a := range r.Attendees {
		round.Attendees = append(round.Attendees, a.MemberID)
	}
	for _, s := range r.Scores {
		round.Scores = append(round.Scores, domain.Score{MemberID: s.MemberID, Strokes: s.Strokes})
	}
	for _, c := range r.Carts {
		for len(round.CartTeams) <= c.CartNo {
			round.CartTeams = append(round.CartTeams, nil)
		}
		round.CartTeams[c.CartNo] = append(round.CartTeams[c.CartNo], c.MemberID)
	}
	for _, a := range r.Awards {
		typeCode := ""
		if a.AwardType != nil {
			typeCode = a.AwardType.Code
		}
		round.Awards = append(round.Awards, domain.Award{TypeCode: typeCode, WinnerName: a.WinnerName})
	}
	for _, e := range r.Expenses {
		round.Expenses = append(round.Expenses, domain.Expense{
			ID:       e.ID,
			Category: e.Category,
			ItemName: e.ItemName,
			Amount:   e.Amount,
		})
	}
	return round
}

// toDomainSnapshot assembles a full season snapshot for the engine
func toDomainSnapshot(members []*models.Member, rounds []*models.Round, settings *models.SeasonSettings) *domain.Snapshot {
	snap := &domain.Snapshot{}
	for _, m := range members {
		snap.Members = append(snap.Members, toDomainMember(m))
	}
	for _, r := range rounds {
		snap.Rounds = append(snap.Rounds, toDomainRound(r))
	}
	if settings != nil {
		snap.Settings = domain.Settings{
			HatHolderID: settings.HatHolderID,
			HatSince:    settings.HatSince,
			SeasonYear:  settings.SeasonYear,
		}
	}
	return snap
}

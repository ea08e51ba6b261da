package services

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"gjb-leaguehub/internal/adapters/persistence/models"
	"gjb-leaguehub/internal/adapters/persistence/repositories"
	"gjb-leaguehub/internal/config"
	"gjb-leaguehub/internal/core/domain"
	"gjb-leaguehub/internal/core/league"

	"gorm.io/gorm"
)

// RoundService owns the round entry flow: draft building, validation,
// the atomic save and deletion. Drafts live in memory until a save
// succeeds; a failed save leaves the draft untouched.
type RoundService struct {
	roundRepo     *repositories.RoundRepository
	memberRepo    repositories.MemberRepository
	settingsRepo  repositories.SettingsRepository
	awardTypeRepo *repositories.AwardTypeRepository
	drafts        *DraftStore
	notify        *NotifyService
	cfg           *config.Config

	// intn is the lucky-draw randomness source, injectable for tests
	intn func(n int) int
}

// NewRoundService creates a new round service
func NewRoundService(
	roundRepo *repositories.RoundRepository,
	memberRepo repositories.MemberRepository,
	settingsRepo repositories.SettingsRepository,
	awardTypeRepo *repositories.AwardTypeRepository,
	notify *NotifyService,
	cfg *config.Config,
) *RoundService {
	return &RoundService{
		roundRepo:     roundRepo,
		memberRepo:    memberRepo,
		settingsRepo:  settingsRepo,
		awardTypeRepo: awardTypeRepo,
		drafts:        NewDraftStore(),
		notify:        notify,
		cfg:           cfg,
		intn:          rand.Intn,
	}
}

// ============================================================
// Draft building
// ============================================================

// UpdateDraftInput carries partial draft updates. Nil slices mean leave
// that part of the draft unchanged.
type UpdateDraftInput struct {
	Date      *string        `json:"date"` // YYYY-MM-DD
	Course    *string        `json:"course"`
	Attendees []uint         `json:"attendees"`
	Scores    []domain.Score `json:"scores"`
}

// GetDraft returns the admin's current draft
func (s *RoundService) GetDraft(userID uint) *RoundDraft {
	return s.drafts.Get(userID)
}

// UpdateDraft merges the input into the admin's draft. Attendee changes
// drop scores, carts and awards for members no longer selected.
func (s *RoundService) UpdateDraft(ctx context.Context, userID uint, input *UpdateDraftInput) (*RoundDraft, error) {
	draft := s.drafts.Get(userID)

	if input.Date != nil {
		d, err := time.Parse("2006-01-02", *input.Date)
		if err != nil {
			return nil, domain.ErrRoundDateRequired
		}
		draft.Date = d
	}
	if input.Course != nil {
		draft.Course = *input.Course
	}

	if input.Attendees != nil {
		members, err := s.memberRepo.List(ctx, true)
		if err != nil {
			return nil, err
		}
		active := make(map[uint]bool, len(members))
		for _, m := range members {
			active[m.ID] = true
		}
		seen := make(map[uint]bool, len(input.Attendees))
		var attendees []uint
		for _, id := range input.Attendees {
			if !active[id] {
				return nil, domain.ErrMemberInactive
			}
			if seen[id] {
				continue
			}
			seen[id] = true
			attendees = append(attendees, id)
		}
		draft.Attendees = attendees

		// Selection changed: derived parts may reference dropped members
		draft.Scores = filterScores(draft.Scores, seen)
		draft.CartTeams = nil
		draft.Awards = nil
	}

	if input.Scores != nil {
		attending := make(map[uint]bool, len(draft.Attendees))
		for _, id := range draft.Attendees {
			attending[id] = true
		}
		seen := make(map[uint]bool, len(input.Scores))
		for _, sc := range input.Scores {
			if sc.Strokes <= 0 {
				return nil, domain.ErrInvalidStrokes
			}
			if !attending[sc.MemberID] {
				return nil, domain.ErrScorerNotAttendee
			}
			if seen[sc.MemberID] {
				return nil, domain.ErrDuplicateScore
			}
			seen[sc.MemberID] = true
		}
		draft.Scores = input.Scores
	}

	s.drafts.Put(userID, draft)
	return draft, nil
}

// filterScores keeps only scores whose member is still selected
func filterScores(scores []domain.Score, keep map[uint]bool) []domain.Score {
	var out []domain.Score
	for _, sc := range scores {
		if keep[sc.MemberID] {
			out = append(out, sc)
		}
	}
	return out
}

// CartGroup is one cart with its skill average, for display
type CartGroup struct {
	CartNo  int     `json:"cart_no"`
	Members []uint  `json:"members"`
	Average float64 `json:"average"`
}

// BuildCarts runs the snake draft over the draft's attendees using their
// season averages and stores the result on the draft.
func (s *RoundService) BuildCarts(ctx context.Context, userID uint) ([]CartGroup, error) {
	draft := s.drafts.Get(userID)
	if len(draft.Attendees) == 0 {
		return nil, domain.ErrNoAttendees
	}

	averages, err := s.seasonAverages(ctx)
	if err != nil {
		return nil, err
	}

	teams := league.CartGroups(draft.Attendees, averages)
	draft.CartTeams = teams
	s.drafts.Put(userID, draft)

	groups := make([]CartGroup, len(teams))
	for i, team := range teams {
		groups[i] = CartGroup{
			CartNo:  i,
			Members: team,
			Average: league.GroupAverage(team, averages),
		}
	}
	return groups, nil
}

// seasonAverages maps members to their current season stroke average
func (s *RoundService) seasonAverages(ctx context.Context) (map[uint]float64, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	rounds, err := s.roundRepo.ListSeason(ctx, settings.SeasonYear)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	var domainMembers []domain.Member
	for _, m := range members {
		domainMembers = append(domainMembers, toDomainMember(m))
	}
	var domainRounds []domain.Round
	for _, r := range rounds {
		domainRounds = append(domainRounds, toDomainRound(r))
	}

	averages := make(map[uint]float64)
	for id, st := range league.AllMemberStatistics(domainMembers, domainRounds) {
		if st.Average != nil {
			averages[id] = *st.Average
		}
	}
	return averages, nil
}

// RecommendAwards proposes award winners for the draft being built
func (s *RoundService) RecommendAwards(ctx context.Context, userID uint) (*league.Recommendations, error) {
	draft := s.drafts.Get(userID)
	if len(draft.Scores) == 0 {
		return &league.Recommendations{}, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	rounds, err := s.roundRepo.ListSeason(ctx, settings.SeasonYear)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	var domainMembers []domain.Member
	names := make(map[uint]string, len(members))
	for _, m := range members {
		domainMembers = append(domainMembers, toDomainMember(m))
		names[m.ID] = m.Name
	}
	var history []domain.Round
	for _, r := range rounds {
		history = append(history, toDomainRound(r))
	}

	excluded := make(map[string]bool, len(draft.Awards))
	for _, a := range draft.Awards {
		excluded[a.WinnerName] = true
	}

	rec := league.RecommendAwards(
		league.RankScores(draft.Scores),
		league.AllMemberStatistics(domainMembers, history),
		history,
		excluded,
		names,
		s.intn,
	)
	return &rec, nil
}

// DraftPreview bundles everything the entry screen shows before a save:
// ranked scores, the hat candidate, a cart proposal and award
// recommendations.
type DraftPreview struct {
	Ranks           []league.RankedScore    `json:"ranks"`
	WorstScorerID   *uint                   `json:"worst_scorer_id"`
	Carts           []CartGroup             `json:"carts"`
	Recommendations *league.Recommendations `json:"recommendations"`
}

// PreviewDraft computes the full pre-save preview without mutating the
// draft. An already-built cart proposal is shown as stored; otherwise a
// fresh snake draft is run for display only.
func (s *RoundService) PreviewDraft(ctx context.Context, userID uint) (*DraftPreview, error) {
	draft := s.drafts.Get(userID)

	preview := &DraftPreview{Ranks: league.RankScores(draft.Scores)}

	if worst, ok := league.WorstScorer(draft.Scores); ok {
		id := worst.MemberID
		preview.WorstScorerID = &id
	}

	if len(draft.Attendees) > 0 {
		averages, err := s.seasonAverages(ctx)
		if err != nil {
			return nil, err
		}
		teams := draft.CartTeams
		if teams == nil {
			teams = league.CartGroups(draft.Attendees, averages)
		}
		groups := make([]CartGroup, len(teams))
		for i, team := range teams {
			groups[i] = CartGroup{
				CartNo:  i,
				Members: team,
				Average: league.GroupAverage(team, averages),
			}
		}
		preview.Carts = groups
	}

	rec, err := s.RecommendAwards(ctx, userID)
	if err != nil {
		return nil, err
	}
	preview.Recommendations = rec

	return preview, nil
}

// AddAwardInput represents one award assignment on the draft
type AddAwardInput struct {
	TypeCode   string `json:"type_code" validate:"required"`
	WinnerName string `json:"winner_name" validate:"required"`
}

// AddDraftAward records an award on the draft after validating the type,
// the winner's attendance and per-round winner uniqueness.
func (s *RoundService) AddDraftAward(ctx context.Context, userID uint, input *AddAwardInput) (*RoundDraft, error) {
	draft := s.drafts.Get(userID)

	if _, err := s.awardTypeRepo.GetByCode(ctx, input.TypeCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownAwardType
		}
		return nil, err
	}

	attendeeNames, err := s.attendeeNames(ctx, draft.Attendees)
	if err != nil {
		return nil, err
	}
	if err := league.ValidateAwardWinner(input.WinnerName, draft.Awards, attendeeNames); err != nil {
		return nil, err
	}

	draft.Awards = append(draft.Awards, domain.Award{
		TypeCode:   input.TypeCode,
		WinnerName: input.WinnerName,
	})
	s.drafts.Put(userID, draft)
	return draft, nil
}

// RemoveDraftAward removes the award at the given position
func (s *RoundService) RemoveDraftAward(userID uint, index int) (*RoundDraft, error) {
	draft := s.drafts.Get(userID)
	if index < 0 || index >= len(draft.Awards) {
		return nil, domain.ErrNotFound
	}
	draft.Awards = append(draft.Awards[:index], draft.Awards[index+1:]...)
	s.drafts.Put(userID, draft)
	return draft, nil
}

// attendeeNames maps draft attendee names for winner validation
func (s *RoundService) attendeeNames(ctx context.Context, attendees []uint) (map[string]bool, error) {
	names := make(map[string]bool, len(attendees))
	for _, id := range attendees {
		m, err := s.memberRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		names[m.Name] = true
	}
	return names, nil
}

// ============================================================
// Save / read / delete
// ============================================================

// validateDraft runs the full pre-save check. All violations are found
// before anything touches the database.
func (s *RoundService) validateDraft(ctx context.Context, draft *RoundDraft) error {
	if draft.Date.IsZero() {
		return domain.ErrRoundDateRequired
	}
	if len(draft.Attendees) == 0 {
		return domain.ErrNoAttendees
	}

	attending := make(map[uint]bool, len(draft.Attendees))
	for _, id := range draft.Attendees {
		attending[id] = true
	}
	seen := make(map[uint]bool, len(draft.Scores))
	for _, sc := range draft.Scores {
		if sc.Strokes <= 0 {
			return domain.ErrInvalidStrokes
		}
		if !attending[sc.MemberID] {
			return domain.ErrScorerNotAttendee
		}
		if seen[sc.MemberID] {
			return domain.ErrDuplicateScore
		}
		seen[sc.MemberID] = true
	}

	attendeeNames, err := s.attendeeNames(ctx, draft.Attendees)
	if err != nil {
		return err
	}
	for i, a := range draft.Awards {
		if err := league.ValidateAwardWinner(a.WinnerName, draft.Awards[:i], attendeeNames); err != nil {
			return err
		}
	}
	return nil
}

// SaveDraft validates and persists the admin's draft as a round. Ranks
// and points are frozen into the score rows, the hat moves to the worst
// scorer, and everything lands in one transaction. The draft is cleared
// only after the transaction commits.
func (s *RoundService) SaveDraft(ctx context.Context, userID uint, isAdmin bool) (*models.Round, error) {
	if !writeAllowed(isAdmin, "round save") {
		return nil, nil
	}

	draft := s.drafts.Get(userID)
	if err := s.validateDraft(ctx, draft); err != nil {
		return nil, err
	}

	round := &models.Round{
		PlayedOn:  draft.Date,
		Course:    draft.Course,
		CreatedBy: userID,
	}
	for i, id := range draft.Attendees {
		round.Attendees = append(round.Attendees, models.RoundAttendee{MemberID: id, Seq: i})
	}

	// Freeze ranks and points at save time. Seq keeps the typed entry
	// order so replays reproduce the same tie-breaks.
	rankByMember := make(map[uint]league.RankedScore, len(draft.Scores))
	for _, rs := range league.RankScores(draft.Scores) {
		rankByMember[rs.MemberID] = rs
	}
	for i, sc := range draft.Scores {
		rs := rankByMember[sc.MemberID]
		round.Scores = append(round.Scores, models.Score{
			MemberID: sc.MemberID,
			Strokes:  sc.Strokes,
			Seq:      i,
			Rank:     rs.Rank,
			Points:   rs.Points,
		})
	}

	for cartNo, team := range draft.CartTeams {
		for slot, id := range team {
			round.Carts = append(round.Carts, models.CartAssignment{
				CartNo:   cartNo,
				Slot:     slot,
				MemberID: id,
			})
		}
	}

	for _, a := range draft.Awards {
		at, err := s.awardTypeRepo.GetByCode(ctx, a.TypeCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrUnknownAwardType
			}
			return nil, err
		}
		round.Awards = append(round.Awards, models.Award{
			AwardTypeID: at.ID,
			WinnerName:  a.WinnerName,
		})
	}

	// Hat handover: worst scorer of this round, if anyone scored
	var hat *models.HatHistory
	var settings *models.SeasonSettings
	var hatHolderName string
	if worst, ok := league.WorstScorer(draft.Scores); ok {
		hat = &models.HatHistory{
			MemberID: worst.MemberID,
			WornOn:   draft.Date,
			Strokes:  worst.Strokes,
		}

		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		since := draft.Date
		settings.HatHolderID = &worst.MemberID
		settings.HatSince = &since
		settings.HatHolder = nil

		if m, err := s.memberRepo.GetByID(ctx, worst.MemberID); err == nil {
			hatHolderName = m.Name
		}

		if err := s.roundRepo.SaveAtomic(ctx, round, hat, settings); err != nil {
			log.Printf("❌ Round save failed (draft kept): %v", err)
			return nil, err
		}
	} else {
		if err := s.roundRepo.SaveAtomic(ctx, round, nil, settings); err != nil {
			log.Printf("❌ Round save failed (draft kept): %v", err)
			return nil, err
		}
	}

	s.drafts.Clear(userID)
	log.Printf("✅ Round saved: #%d %s @ %s (%d attendees, %d scores)",
		round.ID, draft.Date.Format("2006-01-02"), draft.Course,
		len(draft.Attendees), len(draft.Scores))

	s.notify.NotifyRoundSaved(round.ID, round.Course)
	if hat != nil {
		s.notify.NotifyHatChanged(hat.MemberID, hatHolderName)
	}

	return s.roundRepo.GetByID(ctx, round.ID)
}

// GetRound returns a round with all children
func (s *RoundService) GetRound(ctx context.Context, id uint) (*models.Round, error) {
	round, err := s.roundRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, err
	}
	return round, nil
}

// ListRounds lists rounds newest first with pagination
func (s *RoundService) ListRounds(ctx context.Context, offset, limit int) ([]*models.Round, int64, error) {
	return s.roundRepo.List(ctx, offset, limit)
}

// DeleteRound removes a round, then rewinds the hat to the worst scorer
// of the latest remaining round (or clears it entirely).
func (s *RoundService) DeleteRound(ctx context.Context, id uint, isAdmin bool) error {
	if !writeAllowed(isAdmin, "round delete") {
		return nil
	}

	if _, err := s.roundRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRoundNotFound
		}
		return err
	}

	if err := s.roundRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Rewind hat state from what remains
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	rounds, err := s.roundRepo.ListSeason(ctx, settings.SeasonYear)
	if err != nil {
		return err
	}
	var domainRounds []domain.Round
	for _, r := range rounds {
		domainRounds = append(domainRounds, toDomainRound(r))
	}

	events := league.HatHistory(domainRounds)
	if len(events) == 0 {
		settings.HatHolderID = nil
		settings.HatSince = nil
	} else {
		last := events[len(events)-1]
		holderID := last.HolderID
		since := last.Date
		settings.HatHolderID = &holderID
		settings.HatSince = &since
	}
	settings.HatHolder = nil
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return err
	}

	log.Printf("✅ Round deleted: #%d", id)
	s.notify.MarkDirty("round_deleted")
	return nil
}

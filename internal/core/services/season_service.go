package services

import (
	"context"
	"time"

	"gjb-leaguehub/internal/adapters/persistence/repositories"
	"gjb-leaguehub/internal/config"
	"gjb-leaguehub/internal/core/domain"
	"gjb-leaguehub/internal/core/league"
)

// SeasonService derives every season view from a full snapshot read.
// Each call re-reads and re-derives; nothing here is cached, so a saved
// round is visible on the very next request.
type SeasonService struct {
	memberRepo   repositories.MemberRepository
	roundRepo    *repositories.RoundRepository
	settingsRepo repositories.SettingsRepository
	cfg          *config.Config
}

// NewSeasonService creates a new season service
func NewSeasonService(
	memberRepo repositories.MemberRepository,
	roundRepo *repositories.RoundRepository,
	settingsRepo repositories.SettingsRepository,
	cfg *config.Config,
) *SeasonService {
	return &SeasonService{
		memberRepo:   memberRepo,
		roundRepo:    roundRepo,
		settingsRepo: settingsRepo,
		cfg:          cfg,
	}
}

// attendancePolicy builds the charter policy from config
func (s *SeasonService) attendancePolicy() league.AttendancePolicy {
	return league.AttendancePolicy{
		ActiveMonths: s.cfg.League.ActiveMonths,
		Required:     s.cfg.League.RequiredRounds,
	}
}

// expenseBand builds the charter expense band from config
func (s *SeasonService) expenseBand() league.ExpenseBand {
	return league.ExpenseBand{
		Min:              s.cfg.League.ExpenseBandMin,
		Max:              s.cfg.League.ExpenseBandMax,
		DefaultAttendees: s.cfg.League.DefaultAttendees,
	}
}

// duesPolicy builds the charter dues policy from config
func (s *SeasonService) duesPolicy() league.DuesPolicy {
	return league.DuesPolicy{
		DuesAmount: s.cfg.League.DuesAmount,
		GoalRefund: s.cfg.League.GoalRefund,
	}
}

// Snapshot loads the full season state: every member (including inactive,
// their history still counts), every round of the season in date order, and
// the settings singleton.
func (s *SeasonService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	rounds, err := s.roundRepo.ListSeason(ctx, settings.SeasonYear)
	if err != nil {
		return nil, err
	}
	return toDomainSnapshot(members, rounds, settings), nil
}

// nameIndex maps member ids to display names
func nameIndex(members []domain.Member) map[uint]string {
	names := make(map[uint]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names
}

// StandingsEntry is a standings row with the display name resolved
type StandingsEntry struct {
	league.StandingsRow
	Name string `json:"name"`
}

// StandingsOutput is the season standings view
type StandingsOutput struct {
	SeasonYear int              `json:"season_year"`
	Rounds     int              `json:"rounds"`
	Rows       []StandingsEntry `json:"rows"`
}

// GetStandings returns the cumulative points table, played members only
func (s *SeasonService) GetStandings(ctx context.Context) (*StandingsOutput, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	names := nameIndex(snap.Members)
	out := &StandingsOutput{
		SeasonYear: snap.Settings.SeasonYear,
		Rounds:     len(snap.Rounds),
	}
	for _, row := range league.Standings(snap.Members, snap.Rounds) {
		if row.RoundsCounted == 0 {
			continue
		}
		out.Rows = append(out.Rows, StandingsEntry{StandingsRow: row, Name: names[row.MemberID]})
	}
	return out, nil
}

// StatsEntry is a member stats row with name and target context
type StatsEntry struct {
	league.MemberStats
	Name        string `json:"name"`
	TargetScore int    `json:"target_score"`
	NextTarget  *int   `json:"next_target"`
	TargetMet   bool   `json:"target_met"`
}

// GetMemberStats returns per-member season statistics for active members
func (s *SeasonService) GetMemberStats(ctx context.Context) ([]StatsEntry, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := league.AllMemberStatistics(snap.Members, snap.Rounds)
	var out []StatsEntry
	for _, m := range snap.Members {
		if !m.Active {
			continue
		}
		st := stats[m.ID]
		entry := StatsEntry{
			MemberStats: st,
			Name:        m.Name,
			TargetScore: m.TargetScore,
			NextTarget:  m.NextTarget,
		}
		entry.TargetMet = st.BestScore != nil && *st.BestScore <= m.TargetScore
		out = append(out, entry)
	}
	return out, nil
}

// AttendanceEntry is an attendance row with the display name resolved
type AttendanceEntry struct {
	league.AttendanceRow
	Name string `json:"name"`
}

// AttendanceOutput is the season attendance matrix
type AttendanceOutput struct {
	ActiveMonths []int             `json:"active_months"`
	Required     int               `json:"required"`
	Rows         []AttendanceEntry `json:"rows"`
}

// GetAttendance returns the month-presence matrix for active members
func (s *SeasonService) GetAttendance(ctx context.Context) (*AttendanceOutput, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	policy := s.attendancePolicy()
	names := nameIndex(snap.Members)

	var active []domain.Member
	for _, m := range snap.Members {
		if m.Active {
			active = append(active, m)
		}
	}

	out := &AttendanceOutput{
		ActiveMonths: policy.ActiveMonths,
		Required:     policy.Required,
	}
	for _, row := range league.Attendance(active, snap.Rounds, policy) {
		out.Rows = append(out.Rows, AttendanceEntry{AttendanceRow: row, Name: names[row.MemberID]})
	}
	return out, nil
}

// HatEventEntry is a hat handover with the display name resolved
type HatEventEntry struct {
	league.HatEvent
	Name string `json:"name"`
}

// HatCountEntry is a hat tally row with the display name resolved
type HatCountEntry struct {
	league.HatCount
	Name string `json:"name"`
}

// HatOutput is the season hat view: current holder plus full history
type HatOutput struct {
	HolderID   *uint           `json:"holder_id"`
	HolderName string          `json:"holder_name,omitempty"`
	Since      *time.Time      `json:"since"`
	DaysWorn   int             `json:"days_worn"`
	History    []HatEventEntry `json:"history"`
	Counts     []HatCountEntry `json:"counts"`
}

// GetHat returns the current hat holder and the handover history
func (s *SeasonService) GetHat(ctx context.Context) (*HatOutput, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	names := nameIndex(snap.Members)
	events := league.HatHistory(snap.Rounds)

	out := &HatOutput{
		HolderID: snap.Settings.HatHolderID,
		Since:    snap.Settings.HatSince,
	}
	if out.HolderID != nil {
		out.HolderName = names[*out.HolderID]
	}
	if out.Since != nil {
		out.DaysWorn = int(time.Since(*out.Since).Hours() / 24)
	}
	for _, ev := range events {
		out.History = append(out.History, HatEventEntry{HatEvent: ev, Name: names[ev.HolderID]})
	}
	for _, c := range league.HatCounts(events) {
		out.Counts = append(out.Counts, HatCountEntry{HatCount: c, Name: names[c.MemberID]})
	}
	return out, nil
}

// DuesEntry is a dues ledger row with the display name resolved
type DuesEntry struct {
	league.DuesRow
	Name string `json:"name"`
}

// DuesOutput is the season dues ledger
type DuesOutput struct {
	league.DuesSummary
	Rows []DuesEntry `json:"rows"`
}

// GetDues returns the season dues ledger
func (s *SeasonService) GetDues(ctx context.Context) (*DuesOutput, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	names := nameIndex(snap.Members)
	summary := league.Dues(snap.Members, snap.Rounds, s.duesPolicy())

	out := &DuesOutput{DuesSummary: summary}
	out.DuesSummary.Rows = nil
	for _, row := range summary.Rows {
		out.Rows = append(out.Rows, DuesEntry{DuesRow: row, Name: names[row.MemberID]})
	}
	return out, nil
}

// GetExpenseSummary returns the season expense rollup
func (s *SeasonService) GetExpenseSummary(ctx context.Context) (*league.SeasonExpenseSummary, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	summary := league.SummarizeSeasonExpenses(snap.Rounds, s.expenseBand())
	return &summary, nil
}

// RankPreviewEntry is a live rank line for scores being typed in
type RankPreviewEntry struct {
	league.RankedScore
	Name string `json:"name"`
}

// PreviewRanks ranks an in-progress score sheet without persisting anything.
// Entry order matters: equal strokes keep their typed order.
func (s *SeasonService) PreviewRanks(ctx context.Context, scores []domain.Score) ([]RankPreviewEntry, error) {
	members, err := s.memberRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	var out []RankPreviewEntry
	for _, rs := range league.RankScores(scores) {
		out = append(out, RankPreviewEntry{RankedScore: rs, Name: names[rs.MemberID]})
	}
	return out, nil
}

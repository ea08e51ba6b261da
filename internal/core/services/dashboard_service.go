package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gjb-leaguehub/internal/adapters/persistence/repositories"
)

// DashboardService handles dashboard operations. Raw GORM counts for the
// headline numbers, SeasonService for everything derived.
type DashboardService struct {
	db           *gorm.DB
	season       *SeasonService
	settingsRepo repositories.SettingsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB, season *SeasonService, settingsRepo repositories.SettingsRepository) *DashboardService {
	return &DashboardService{db: db, season: season, settingsRepo: settingsRepo}
}

// ============================================================
// Admin Dashboard
// ============================================================

// AdminDashboardData represents admin dashboard data
type AdminDashboardData struct {
	// Roster Statistics
	TotalMembers    int64 `json:"total_members"`
	ActiveMembers   int64 `json:"active_members"`
	DuesPaidCount   int64 `json:"dues_paid_count"`
	GoalAchieverCnt int64 `json:"goal_achiever_count"`

	// Season Statistics
	RoundsPlayed     int64 `json:"rounds_played"`
	RoundsThisMonth  int64 `json:"rounds_this_month"`
	TotalExpenses    int64 `json:"total_expenses"`
	ExpensesThisYear int64 `json:"expenses_this_year"`

	// Leaders
	Leader       *StandingsEntry   `json:"leader,omitempty"`
	HatHolder    *HatEventEntry    `json:"hat_holder,omitempty"`
	HatCounts    map[uint]int      `json:"hat_counts"`
	TopRows      []StandingsEntry  `json:"top_rows"`
	NonCompliant []AttendanceEntry `json:"non_compliant"`

	// Recent Activity
	RecentRounds []RoundSummary `json:"recent_rounds"`
}

// RoundSummary represents round summary for the dashboard list
type RoundSummary struct {
	ID        uint      `json:"id"`
	PlayedOn  time.Time `json:"played_on"`
	Course    string    `json:"course"`
	Attendees int       `json:"attendees"`
	Scores    int       `json:"scores"`
}

// GetAdminDashboard returns admin dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{}

	// Roster counts
	s.db.WithContext(ctx).Table("members").Where("deleted_at IS NULL").Count(&data.TotalMembers)
	s.db.WithContext(ctx).Table("members").Where("is_active = ? AND deleted_at IS NULL", true).Count(&data.ActiveMembers)
	s.db.WithContext(ctx).Table("members").Where("dues_paid = ? AND deleted_at IS NULL", true).Count(&data.DuesPaidCount)
	s.db.WithContext(ctx).Table("members").Where("goal_achieved = ? AND deleted_at IS NULL", true).Count(&data.GoalAchieverCnt)

	// Round counts
	s.db.WithContext(ctx).Table("rounds").Where("deleted_at IS NULL").Count(&data.RoundsPlayed)

	startOfMonth := time.Now().AddDate(0, 0, -time.Now().Day()+1).Truncate(24 * time.Hour)
	s.db.WithContext(ctx).Table("rounds").
		Where("played_on >= ? AND deleted_at IS NULL", startOfMonth).
		Count(&data.RoundsThisMonth)

	// Expense totals
	s.db.WithContext(ctx).Table("expenses").
		Where("deleted_at IS NULL").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalExpenses)

	startOfYear := time.Date(time.Now().Year(), 1, 1, 0, 0, 0, 0, time.Local)
	s.db.WithContext(ctx).Table("expenses").
		Joins("JOIN rounds ON rounds.id = expenses.round_id").
		Where("rounds.played_on >= ? AND expenses.deleted_at IS NULL", startOfYear).
		Select("COALESCE(SUM(expenses.amount), 0)").
		Scan(&data.ExpensesThisYear)

	// Standings head
	standings, err := s.season.GetStandings(ctx)
	if err != nil {
		return nil, err
	}
	if len(standings.Rows) > 0 {
		data.Leader = &standings.Rows[0]
	}
	top := len(standings.Rows)
	if top > 5 {
		top = 5
	}
	data.TopRows = standings.Rows[:top]

	// Hat holder
	hat, err := s.season.GetHat(ctx)
	if err != nil {
		return nil, err
	}
	if len(hat.History) > 0 {
		data.HatHolder = &hat.History[len(hat.History)-1]
	}

	// Hat rounds per member, straight from the handover rows
	counts, err := s.settingsRepo.HatCountByMember(ctx)
	if err != nil {
		return nil, err
	}
	data.HatCounts = counts

	// Attendance stragglers
	attendance, err := s.season.GetAttendance(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range attendance.Rows {
		if !row.Compliant {
			data.NonCompliant = append(data.NonCompliant, row)
		}
	}

	// Recent rounds
	var recent []struct {
		ID       uint
		PlayedOn time.Time
		Course   string
	}
	s.db.WithContext(ctx).Table("rounds").
		Where("deleted_at IS NULL").
		Order("played_on DESC, id DESC").
		Limit(5).
		Scan(&recent)
	for _, r := range recent {
		var attendees, scores int64
		s.db.WithContext(ctx).Table("round_attendees").Where("round_id = ?", r.ID).Count(&attendees)
		s.db.WithContext(ctx).Table("scores").Where("round_id = ?", r.ID).Count(&scores)
		data.RecentRounds = append(data.RecentRounds, RoundSummary{
			ID:        r.ID,
			PlayedOn:  r.PlayedOn,
			Course:    r.Course,
			Attendees: int(attendees),
			Scores:    int(scores),
		})
	}

	return data, nil
}

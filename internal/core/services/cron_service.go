package services

import (
	"context"
	"log"
	"time"

	"gjb-leaguehub/internal/adapters/persistence/repositories"
	"gjb-leaguehub/internal/config"

	"github.com/robfig/cron/v3"
)

// CronService runs the scheduled background jobs: the morning attendance
// digest during the season and nightly token cleanup.
type CronService struct {
	c         *cron.Cron
	season    *SeasonService
	tokenRepo repositories.RefreshTokenRepository
	cfg       *config.Config
}

// NewCronService creates a new cron service
func NewCronService(
	season *SeasonService,
	tokenRepo repositories.RefreshTokenRepository,
	cfg *config.Config,
) *CronService {
	return &CronService{
		c:         cron.New(),
		season:    season,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

// Start registers and launches all jobs
func (s *CronService) Start() error {
	// 08:30 daily: attendance digest (season months only)
	if _, err := s.c.AddFunc("30 8 * * *", s.attendanceDigest); err != nil {
		return err
	}

	// 03:00 daily: purge expired refresh tokens
	if _, err := s.c.AddFunc("0 3 * * *", s.cleanupTokens); err != nil {
		return err
	}

	s.c.Start()
	log.Println("⏰ Cron jobs started")
	return nil
}

// Stop halts the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron jobs stopped")
}

// attendanceDigest logs who is still short of the quota. Off-season
// months stay quiet.
func (s *CronService) attendanceDigest() {
	month := int(time.Now().Month())
	inSeason := false
	for _, m := range s.cfg.League.ActiveMonths {
		if m == month {
			inSeason = true
			break
		}
	}
	if !inSeason {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	attendance, err := s.season.GetAttendance(ctx)
	if err != nil {
		log.Printf("❌ Attendance digest failed: %v", err)
		return
	}

	short := 0
	for _, row := range attendance.Rows {
		if !row.Compliant {
			short++
			log.Printf("⚠️ Attendance: %s at %d/%d active months", row.Name, row.ActiveCount, attendance.Required)
		}
	}
	if short == 0 {
		log.Println("✅ Attendance digest: everyone on quota")
	}
}

// cleanupTokens purges expired refresh tokens
func (s *CronService) cleanupTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.tokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("❌ Token cleanup failed: %v", err)
		return
	}
	log.Println("✅ Expired refresh tokens purged")
}

package config

import (
	"log"

	"gjb-leaguehub/internal/adapters/persistence/models"
	"gjb-leaguehub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedSeasonSettings(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	// Check if admin already exists
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "ADMIN").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@gjbgolf.kr",
		Password: hashedPassword,
		Role:     "ADMIN",
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Username)
	return nil
}

// seedSeasonSettings ensures the singleton settings row exists
func (s *Seeder) seedSeasonSettings() error {
	var count int64
	s.db.Model(&models.SeasonSettings{}).Count(&count)
	if count > 0 {
		return nil
	}

	settings := &models.SeasonSettings{
		ID:         1,
		SeasonYear: AppConfig.League.SeasonYear,
	}
	if err := s.db.Create(settings).Error; err != nil {
		return err
	}

	log.Printf("✅ Season settings created [year: %d]", settings.SeasonYear)
	return nil
}

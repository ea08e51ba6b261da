package repositories

import (
	"context"
	"errors"
	"time"

	"gjb-leaguehub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// settingsRepository implements SettingsRepository interface
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the singleton settings row, creating it on first access
func (r *settingsRepository) Get(ctx context.Context) (*models.SeasonSettings, error) {
	var settings models.SeasonSettings
	err := r.db.WithContext(ctx).Preload("HatHolder").First(&settings, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.SeasonSettings{ID: 1, SeasonYear: time.Now().Year()}
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update saves the settings row
func (r *settingsRepository) Update(ctx context.Context, settings *models.SeasonSettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}

// HatCountByMember counts hat rounds per member
func (r *settingsRepository) HatCountByMember(ctx context.Context) (map[uint]int, error) {
	type row struct {
		MemberID uint
		Times    int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.HatHistory{}).
		Select("member_id, COUNT(*) AS times").
		Group("member_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, rw := range rows {
		counts[rw.MemberID] = rw.Times
	}
	return counts, nil
}

package repositories

import (
	"context"

	"gjb-leaguehub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// RoundRepository handles round data access
type RoundRepository struct {
	db *gorm.DB
}

// NewRoundRepository creates a new round repository
func NewRoundRepository(db *gorm.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

// preloadAll attaches every child table in a deterministic order.
// Seq ordering keeps score entry order stable across reloads, which
// the hat tie-break depends on.
func (r *RoundRepository) preloadAll(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Attendees", func(db *gorm.DB) *gorm.DB {
			return db.Order("round_attendees.seq ASC")
		}).
		Preload("Attendees.Member").
		Preload("Scores", func(db *gorm.DB) *gorm.DB {
			return db.Order("scores.seq ASC")
		}).
		Preload("Scores.Member").
		Preload("Carts", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_assignments.cart_no ASC, cart_assignments.slot ASC")
		}).
		Preload("Carts.Member").
		Preload("Awards").
		Preload("Awards.AwardType").
		Preload("Expenses")
}

// GetByID gets a round by ID with all relations
func (r *RoundRepository) GetByID(ctx context.Context, id uint) (*models.Round, error) {
	var round models.Round
	err := r.preloadAll(r.db.WithContext(ctx)).First(&round, id).Error
	if err != nil {
		return nil, err
	}
	return &round, nil
}

// ListSeason lists every round of a season in chronological order
func (r *RoundRepository) ListSeason(ctx context.Context, year int) ([]*models.Round, error) {
	var rounds []*models.Round
	err := r.preloadAll(r.db.WithContext(ctx)).
		Where("YEAR(played_on) = ?", year).
		Order("played_on ASC, id ASC").
		Find(&rounds).Error
	if err != nil {
		return nil, err
	}
	return rounds, nil
}

// List lists rounds with pagination, newest first
func (r *RoundRepository) List(ctx context.Context, offset, limit int) ([]*models.Round, int64, error) {
	var rounds []*models.Round
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Round{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.preloadAll(r.db.WithContext(ctx)).
		Order("played_on DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rounds).Error
	if err != nil {
		return nil, 0, err
	}

	return rounds, total, nil
}

// SaveAtomic persists a round, its hat history row and the season
// settings update in one transaction. On update the child rows are
// replaced wholesale so the stored round always mirrors the draft.
func (r *RoundRepository) SaveAtomic(ctx context.Context, round *models.Round, hat *models.HatHistory, settings *models.SeasonSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if round.ID != 0 {
			for _, child := range []interface{}{
				&models.RoundAttendee{},
				&models.Score{},
				&models.CartAssignment{},
				&models.Award{},
			} {
				if err := tx.Where("round_id = ?", round.ID).Delete(child).Error; err != nil {
					return err
				}
			}
			if err := tx.Unscoped().Where("round_id = ?", round.ID).Delete(&models.Expense{}).Error; err != nil {
				return err
			}
			if err := tx.Where("round_id = ?", round.ID).Delete(&models.HatHistory{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(round).Error; err != nil {
			return err
		}

		if hat != nil {
			hat.RoundID = round.ID
			if err := tx.Create(hat).Error; err != nil {
				return err
			}
		}

		if settings != nil {
			if err := tx.Save(settings).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a round and its children, then rewinds hat history
func (r *RoundRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&models.RoundAttendee{},
			&models.Score{},
			&models.CartAssignment{},
			&models.Award{},
			&models.HatHistory{},
		} {
			if err := tx.Where("round_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("round_id = ?", id).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Round{}, id).Error
	})
}

// CountByYear counts rounds in a season
func (r *RoundRepository) CountByYear(ctx context.Context, year int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Round{}).
		Where("YEAR(played_on) = ?", year).
		Count(&count).Error
	return count, err
}

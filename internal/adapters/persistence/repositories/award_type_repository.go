package repositories

import (
	"context"

	"gjb-leaguehub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// AwardTypeRepository handles award type data access
type AwardTypeRepository struct {
	db *gorm.DB
}

// NewAwardTypeRepository creates a new award type repository
func NewAwardTypeRepository(db *gorm.DB) *AwardTypeRepository {
	return &AwardTypeRepository{db: db}
}

// Create creates a new award type
func (r *AwardTypeRepository) Create(ctx context.Context, awardType *models.AwardType) error {
	return r.db.WithContext(ctx).Create(awardType).Error
}

// GetByID gets an award type by ID
func (r *AwardTypeRepository) GetByID(ctx context.Context, id uint) (*models.AwardType, error) {
	var awardType models.AwardType
	err := r.db.WithContext(ctx).First(&awardType, id).Error
	if err != nil {
		return nil, err
	}
	return &awardType, nil
}

// GetByCode gets an award type by code
func (r *AwardTypeRepository) GetByCode(ctx context.Context, code string) (*models.AwardType, error) {
	var awardType models.AwardType
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&awardType).Error
	if err != nil {
		return nil, err
	}
	return &awardType, nil
}

// List lists all active award types in display order
func (r *AwardTypeRepository) List(ctx context.Context) ([]*models.AwardType, error) {
	var awardTypes []*models.AwardType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&awardTypes).Error
	return awardTypes, err
}

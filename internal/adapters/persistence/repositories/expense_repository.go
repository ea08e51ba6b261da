package repositories

import (
	"context"

	"gjb-leaguehub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ExpenseRepository handles expense data access
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create creates a new expense
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// GetByID gets an expense by ID
func (r *ExpenseRepository) GetByID(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.WithContext(ctx).First(&expense, id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListByRound lists expenses for a round
func (r *ExpenseRepository) ListByRound(ctx context.Context, roundID uint) ([]*models.Expense, error) {
	var expenses []*models.Expense
	err := r.db.WithContext(ctx).
		Where("round_id = ?", roundID).
		Order("id ASC").
		Find(&expenses).Error
	return expenses, err
}

// Update updates an expense
func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// Delete soft deletes an expense
func (r *ExpenseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Expense{}, id).Error
}

// TotalByRound sums expense amounts for a round
func (r *ExpenseRepository) TotalByRound(ctx context.Context, roundID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Expense{}).
		Where("round_id = ?", roundID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

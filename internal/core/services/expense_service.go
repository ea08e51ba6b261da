package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"gjb-leaguehub/internal/adapters/persistence/models"
	"gjb-leaguehub/internal/adapters/persistence/repositories"
	"gjb-leaguehub/internal/config"
	"gjb-leaguehub/internal/core/domain"
	"gjb-leaguehub/internal/core/league"

	"gorm.io/gorm"
)

// ExpenseService manages round expense line items. Expenses are the one
// mutable part of a saved round: prize receipts trickle in after the day.
type ExpenseService struct {
	expenseRepo *repositories.ExpenseRepository
	roundRepo   *repositories.RoundRepository
	notify      *NotifyService
	cfg         *config.Config
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo *repositories.ExpenseRepository,
	roundRepo *repositories.RoundRepository,
	notify *NotifyService,
	cfg *config.Config,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		roundRepo:   roundRepo,
		notify:      notify,
		cfg:         cfg,
	}
}

// AddExpenseInput represents one expense line item
type AddExpenseInput struct {
	Category string `json:"category" validate:"required"`
	ItemName string `json:"item_name" validate:"required"`
	Amount   int64  `json:"amount" validate:"required"`
}

// band builds the charter expense band from config
func (s *ExpenseService) band() league.ExpenseBand {
	return league.ExpenseBand{
		Min:              s.cfg.League.ExpenseBandMin,
		Max:              s.cfg.League.ExpenseBandMax,
		DefaultAttendees: s.cfg.League.DefaultAttendees,
	}
}

// AddExpense attaches a line item to a saved round
func (s *ExpenseService) AddExpense(ctx context.Context, roundID uint, input *AddExpenseInput, isAdmin bool) (*models.Expense, error) {
	if !writeAllowed(isAdmin, "expense add") {
		return nil, nil
	}

	if input.Amount <= 0 {
		return nil, domain.ErrInvalidExpenseAmount
	}
	if strings.TrimSpace(input.ItemName) == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.roundRepo.GetByID(ctx, roundID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, err
	}

	expense := &models.Expense{
		RoundID:  roundID,
		Category: strings.TrimSpace(input.Category),
		ItemName: strings.TrimSpace(input.ItemName),
		Amount:   input.Amount,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	log.Printf("✅ Expense added to round #%d: %s (%d)", roundID, expense.ItemName, expense.Amount)
	s.notify.MarkDirty("expense_added")
	return expense, nil
}

// DeleteExpense removes a line item
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uint, isAdmin bool) error {
	if !writeAllowed(isAdmin, "expense delete") {
		return nil
	}

	if _, err := s.expenseRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpenseNotFound
		}
		return err
	}

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Expense deleted: #%d", id)
	s.notify.MarkDirty("expense_deleted")
	return nil
}

// RoundExpensesOutput is one round's expense sheet with its verdict
type RoundExpensesOutput struct {
	RoundID uint                       `json:"round_id"`
	Items   []*models.Expense          `json:"items"`
	Summary league.RoundExpenseSummary `json:"summary"`
}

// GetRoundExpenses returns a round's line items and per-person verdict
func (s *ExpenseService) GetRoundExpenses(ctx context.Context, roundID uint) (*RoundExpensesOutput, error) {
	round, err := s.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, err
	}

	items, err := s.expenseRepo.ListByRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	return &RoundExpensesOutput{
		RoundID: roundID,
		Items:   items,
		Summary: league.SummarizeRoundExpenses(toDomainRound(round), s.band()),
	}, nil
}

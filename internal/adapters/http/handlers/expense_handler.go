package handlers

import (
	"errors"
	"strconv"

	"gjb-leaguehub/internal/core/domain"
	"gjb-leaguehub/internal/core/services"
	"gjb-leaguehub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ExpenseHandler handles per-round expense endpoints
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List returns the expenses and per-head split for one round
// @Summary List round expenses
// @Description Expenses for a round with total and per-attendee share
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Round ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rounds/{id}/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	roundID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid round ID")
	}

	out, err := h.expenseService.GetRoundExpenses(c.Context(), uint(roundID))
	if err != nil {
		if errors.Is(err, domain.ErrRoundNotFound) {
			return response.NotFound(c, "Round not found")
		}
		return response.InternalServerError(c, "Failed to list expenses")
	}
	return response.Success(c, "Expenses retrieved", out)
}

// Create records an expense against a round
// @Summary Add expense
// @Description Record an expense against a round
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Round ID"
// @Param body body services.AddExpenseInput true "Expense"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /rounds/{id}/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	roundID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid round ID")
	}

	var input services.AddExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	expense, err := h.expenseService.AddExpense(c.Context(), uint(roundID), &input, isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoundNotFound):
			return response.NotFound(c, "Round not found")
		case errors.Is(err, domain.ErrInvalidExpenseAmount):
			return response.BadRequest(c, "Expense amount must be positive")
		default:
			return response.InternalServerError(c, "Failed to add expense")
		}
	}
	return response.Created(c, "Expense added", expense)
}

// Delete removes an expense
// @Summary Delete expense
// @Description Delete an expense by ID
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expenseId path int true "Expense ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /expenses/{expenseId} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("expenseId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid expense ID")
	}

	if err := h.expenseService.DeleteExpense(c.Context(), uint(id), isAdmin(c)); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return response.NotFound(c, "Expense not found")
		}
		return response.InternalServerError(c, "Failed to delete expense")
	}
	return response.Success(c, "Expense deleted", nil)
}

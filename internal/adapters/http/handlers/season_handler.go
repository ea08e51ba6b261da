package handlers

import (
	"gjb-leaguehub/internal/adapters/persistence/repositories"
	"gjb-leaguehub/internal/core/domain"
	"gjb-leaguehub/internal/core/services"
	"gjb-leaguehub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SeasonHandler serves the derived season views: standings, stats,
// attendance, hat, dues and expense totals
type SeasonHandler struct {
	seasonService *services.SeasonService
	awardTypeRepo *repositories.AwardTypeRepository
}

// NewSeasonHandler creates a new season handler
func NewSeasonHandler(seasonService *services.SeasonService, awardTypeRepo *repositories.AwardTypeRepository) *SeasonHandler {
	return &SeasonHandler{
		seasonService: seasonService,
		awardTypeRepo: awardTypeRepo,
	}
}

// Snapshot returns the full season read: members, rounds with all
// children, and settings. Observers re-fetch this after every refresh
// signal.
// @Summary Season snapshot
// @Description Full season state: roster, rounds with children, settings
// @Tags Season
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /season [get]
func (h *SeasonHandler) Snapshot(c *fiber.Ctx) error {
	snap, err := h.seasonService.Snapshot(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load season snapshot")
	}
	return response.Success(c, "Season snapshot retrieved", snap)
}

// Standings returns the season points table
// @Summary Season standings
// @Description Ranked season standings with win and podium tie-breaks
// @Tags Season
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /season/standings [get]
func (h *SeasonHandler) Standings(c *fiber.Ctx) error {
	out, err := h.seasonService.GetStandings(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute standings")
	}
	return response.Success(c, "Standings retrieved", out)
}

// Stats returns per-member season statistics
// @Summary Member statistics
// @Description Per-member rounds, average strokes, best round and target status
// @Tags Season
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /season/stats [get]
func (h *SeasonHandler) Stats(c *fiber.Ctx) error {
	out, err := h.seasonService.GetMemberStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute member stats")
	}
	return response.Success(c, "Member stats retrieved", out)
}

// Attendance returns attendance compliance for the season
// @Summary Attendance compliance
// @Description Attendance counts against the active-month quota
// @Tags Season
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /season/attendance [get]
func (h *SeasonHandler) Attendance(c *fiber.Ctx) error {
	out, err := h.seasonService.GetAttendance(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute attendance")
	}
	return response.Success(c, "Attendance retrieved", out)
}

// Hat returns the hat holder, history and per-member counts
// @Summary Hat tracker
// @Description Current hat holder, wear history and days worn
// @Tags Season
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /season/hat [get]
func (h *SeasonHandler) Hat(c *fiber.Ctx) error {
	out, err := h.seasonService.GetHat(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute hat state")
	}
	return response.Success(c, "Hat state retrieved", out)
}

// Dues returns the season dues ledger
// @Summary Dues ledger
// @Description Per-member dues and refund eligibility with season totals
// @Tags Season
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /season/dues [get]
func (h *SeasonHandler) Dues(c *fiber.Ctx) error {
	out, err := h.seasonService.GetDues(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute dues")
	}
	return response.Success(c, "Dues retrieved", out)
}

// ExpenseSummary returns season-wide expense totals
// @Summary Season expense summary
// @Description Expense totals by round and by category across the season
// @Tags Season
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /season/expenses [get]
func (h *SeasonHandler) ExpenseSummary(c *fiber.Ctx) error {
	out, err := h.seasonService.GetExpenseSummary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute expense summary")
	}
	return response.Success(c, "Expense summary retrieved", out)
}

// RankPreviewRequest carries ad-hoc scores to rank without saving
type RankPreviewRequest struct {
	Scores []domain.Score `json:"scores"`
}

// PreviewRanks ranks a hypothetical score sheet
// @Summary Preview ranks
// @Description Rank and point a score sheet without persisting anything
// @Tags Season
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RankPreviewRequest true "Scores to rank"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /season/rank-preview [post]
func (h *SeasonHandler) PreviewRanks(c *fiber.Ctx) error {
	var req RankPreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(req.Scores) == 0 {
		return response.BadRequest(c, "Provide at least one score")
	}

	out, err := h.seasonService.PreviewRanks(c.Context(), req.Scores)
	if err != nil {
		return roundValidationError(c, err)
	}
	return response.Success(c, "Ranks previewed", out)
}

// AwardTypes lists the configured award types
// @Summary List award types
// @Description List award types in display order
// @Tags Season
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /master/award-types [get]
func (h *SeasonHandler) AwardTypes(c *fiber.Ctx) error {
	types, err := h.awardTypeRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list award types")
	}
	return response.Success(c, "Award types retrieved", types)
}

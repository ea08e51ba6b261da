package handlers

import (
	"errors"
	"strconv"

	"gjb-leaguehub/internal/core/domain"
	"gjb-leaguehub/internal/core/services"
	"gjb-leaguehub/internal/pkg/pagination"
	"gjb-leaguehub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RoundHandler handles round entry and round read endpoints
type RoundHandler struct {
	roundService *services.RoundService
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(roundService *services.RoundService) *RoundHandler {
	return &RoundHandler{roundService: roundService}
}

// roundValidationError maps the round validation errors to HTTP responses.
// Everything here is user-correctable input, so 400/404/409 with a
// precise message.
func roundValidationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrRoundDateRequired):
		return response.BadRequest(c, "Round date is required")
	case errors.Is(err, domain.ErrNoAttendees):
		return response.BadRequest(c, "Select at least one attendee")
	case errors.Is(err, domain.ErrInvalidStrokes):
		return response.BadRequest(c, "Stroke counts must be positive integers")
	case errors.Is(err, domain.ErrScorerNotAttendee):
		return response.BadRequest(c, "Scored member is not an attendee")
	case errors.Is(err, domain.ErrDuplicateScore):
		return response.BadRequest(c, "A member has more than one score")
	case errors.Is(err, domain.ErrMemberInactive):
		return response.BadRequest(c, "Selected member is not active")
	case errors.Is(err, domain.ErrAwardWinnerNotAttendee):
		return response.BadRequest(c, "Award winner must be an attendee")
	case errors.Is(err, domain.ErrDuplicateAwardWinner):
		return response.Conflict(c, "Winner already has an award in this round")
	case errors.Is(err, domain.ErrUnknownAwardType):
		return response.BadRequest(c, "Unknown award type")
	case errors.Is(err, domain.ErrRoundNotFound):
		return response.NotFound(c, "Round not found")
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Not found")
	default:
		return response.InternalServerError(c, "Round operation failed")
	}
}

// GetDraft returns the admin's in-progress round draft
// @Summary Get round draft
// @Description Get the current in-memory round draft
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /rounds/draft [get]
func (h *RoundHandler) GetDraft(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	return response.Success(c, "Draft retrieved", h.roundService.GetDraft(userID))
}

// UpdateDraft merges changes into the draft
// @Summary Update round draft
// @Description Set date, course, attendees or scores on the draft
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UpdateDraftInput true "Draft changes"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /rounds/draft [patch]
func (h *RoundHandler) UpdateDraft(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input services.UpdateDraftInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	draft, err := h.roundService.UpdateDraft(c.Context(), userID, &input)
	if err != nil {
		return roundValidationError(c, err)
	}
	return response.Success(c, "Draft updated", draft)
}

// BuildCarts runs the snake draft over the draft attendees
// @Summary Build cart teams
// @Description Partition draft attendees into skill-balanced carts
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /rounds/draft/carts [post]
func (h *RoundHandler) BuildCarts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	groups, err := h.roundService.BuildCarts(c.Context(), userID)
	if err != nil {
		return roundValidationError(c, err)
	}
	return response.Success(c, "Cart teams built", groups)
}

// Preview returns the full pre-save view of the draft
// @Summary Preview round draft
// @Description Ranked scores, hat candidate, cart proposal and award recommendations
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /rounds/draft/preview [get]
func (h *RoundHandler) Preview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	preview, err := h.roundService.PreviewDraft(c.Context(), userID)
	if err != nil {
		return roundValidationError(c, err)
	}
	return response.Success(c, "Draft preview computed", preview)
}

// RecommendAwards proposes award winners for the draft
// @Summary Recommend awards
// @Description Propose most-improved, handicap and lucky-draw winners
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /rounds/draft/awards/recommend [get]
func (h *RoundHandler) RecommendAwards(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	rec, err := h.roundService.RecommendAwards(c.Context(), userID)
	if err != nil {
		return roundValidationError(c, err)
	}
	return response.Success(c, "Recommendations computed", rec)
}

// AddAward records an award on the draft
// @Summary Add draft award
// @Description Record an award assignment on the draft
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AddAwardInput true "Award assignment"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /rounds/draft/awards [post]
func (h *RoundHandler) AddAward(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input services.AddAwardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.TypeCode == "" || input.WinnerName == "" {
		return response.BadRequest(c, "Award type and winner are required")
	}

	draft, err := h.roundService.AddDraftAward(c.Context(), userID, &input)
	if err != nil {
		return roundValidationError(c, err)
	}
	return response.Success(c, "Award added", draft)
}

// RemoveAward removes an award from the draft
// @Summary Remove draft award
// @Description Remove the award at the given position
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "Award position"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rounds/draft/awards/{index} [delete]
func (h *RoundHandler) RemoveAward(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return response.BadRequest(c, "Invalid award index")
	}

	draft, err := h.roundService.RemoveDraftAward(userID, index)
	if err != nil {
		return roundValidationError(c, err)
	}
	return response.Success(c, "Award removed", draft)
}

// Save validates and persists the draft as a round
// @Summary Save round
// @Description Validate and atomically persist the draft round
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /rounds [post]
func (h *RoundHandler) Save(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	round, err := h.roundService.SaveDraft(c.Context(), userID, isAdmin(c))
	if err != nil {
		return roundValidationError(c, err)
	}
	return response.Created(c, "Round saved", round)
}

// List returns rounds newest first
// @Summary List rounds
// @Description List rounds with pagination, newest first
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /rounds [get]
func (h *RoundHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	rounds, total, err := h.roundService.ListRounds(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list rounds")
	}
	return response.Success(c, "Rounds retrieved", pagination.NewResponse(rounds, params, total))
}

// Get returns one round with all children
// @Summary Get round
// @Description Get a round by ID with scores, carts, awards and expenses
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Round ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rounds/{id} [get]
func (h *RoundHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid round ID")
	}

	round, err := h.roundService.GetRound(c.Context(), uint(id))
	if err != nil {
		return roundValidationError(c, err)
	}
	return response.Success(c, "Round retrieved", round)
}

// Delete removes a round
// @Summary Delete round
// @Description Delete a round and rewind derived season state
// @Tags Rounds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Round ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rounds/{id} [delete]
func (h *RoundHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid round ID")
	}

	if err := h.roundService.DeleteRound(c.Context(), uint(id), isAdmin(c)); err != nil {
		return roundValidationError(c, err)
	}
	return response.Success(c, "Round deleted", nil)
}

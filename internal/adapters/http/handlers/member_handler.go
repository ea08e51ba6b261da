package handlers

import (
	"errors"
	"strconv"

	"gjb-leaguehub/internal/core/services"
	"gjb-leaguehub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles roster endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// List returns the roster
// @Summary List members
// @Description List the roster, optionally active members only
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Active members only"
// @Success 200 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active", false)

	members, err := h.memberService.ListMembers(c.Context(), activeOnly)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}
	return response.Success(c, "Members retrieved", members)
}

// Get returns one member
// @Summary Get member
// @Description Get a member by ID
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.memberService.GetMember(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get member")
	}
	return response.Success(c, "Member retrieved", member)
}

// Create adds a member to the roster (admin)
// @Summary Create member
// @Description Add a member to the roster
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateMemberInput true "Member data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var input services.CreateMemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.CreateMember(c.Context(), &input, isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNameRequired):
			return response.BadRequest(c, "Member name is required")
		case errors.Is(err, services.ErrInvalidTarget):
			return response.BadRequest(c, "Target score must be positive")
		case errors.Is(err, services.ErrMemberNameTaken):
			return response.Conflict(c, "Member name already exists")
		default:
			return response.InternalServerError(c, "Failed to create member")
		}
	}
	return response.Created(c, "Member created", member)
}

// Update modifies roster fields (admin)
// @Summary Update member
// @Description Update roster fields; unchanged requests are silent no-ops
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body services.UpdateMemberInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [patch]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	var input services.UpdateMemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.UpdateMember(c.Context(), uint(id), &input, isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrMemberNameRequired):
			return response.BadRequest(c, "Member name is required")
		case errors.Is(err, services.ErrInvalidTarget):
			return response.BadRequest(c, "Target score must be positive")
		case errors.Is(err, services.ErrMemberNameTaken):
			return response.Conflict(c, "Member name already exists")
		default:
			return response.InternalServerError(c, "Failed to update member")
		}
	}
	return response.Success(c, "Member updated", member)
}

// Deactivate retires a member (admin)
// @Summary Deactivate member
// @Description Retire a member; history is kept
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [delete]
func (h *MemberHandler) Deactivate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.memberService.DeactivateMember(c.Context(), uint(id), isAdmin(c)); err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to deactivate member")
	}
	return response.Success(c, "Member deactivated", nil)
}

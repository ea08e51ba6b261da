package handlers

import (
	"gjb-leaguehub/internal/core/services"
	"gjb-leaguehub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin dashboard rollup
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Admin returns the admin dashboard rollup
// @Summary Admin dashboard
// @Description Roster counts, season leader, hat holder, compliance and recent rounds
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard/admin [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAdminDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard")
	}
	return response.Success(c, "Dashboard retrieved", data)
}

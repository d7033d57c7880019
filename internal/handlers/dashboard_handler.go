package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/valvesss/weseg-replit/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Register(api fiber.Router) {
	api.Get("/dashboard/stats", h.GetStats)
}

func (h *DashboardHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.dashboardService.ComputeStats(c.Context())
	if err != nil {
		return writeServiceError(c, err, "Stats not found")
	}
	return c.Status(http.StatusOK).JSON(stats)
}

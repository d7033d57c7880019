package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/services"
)

type BrokerProfileHandler struct {
	profileService *services.BrokerProfileService
}

func NewBrokerProfileHandler(profileService *services.BrokerProfileService) *BrokerProfileHandler {
	return &BrokerProfileHandler{profileService: profileService}
}

func (h *BrokerProfileHandler) Register(api fiber.Router) {
	// Singleton resource: no id in the path.
	api.Get("/broker-profile", h.GetProfile)
	api.Put("/broker-profile", h.UpsertProfile)
}

func (h *BrokerProfileHandler) GetProfile(c fiber.Ctx) error {
	profile, err := h.profileService.GetProfile(c.Context())
	if err != nil {
		return writeServiceError(c, err, "Broker profile not found")
	}
	return c.Status(http.StatusOK).JSON(profile)
}

func (h *BrokerProfileHandler) UpsertProfile(c fiber.Ctx) error {
	var req models.UpsertBrokerProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid broker profile data")
	}

	profile, err := h.profileService.UpsertProfile(c.Context(), req)
	if err != nil {
		return writeServiceError(c, err, "Broker profile not found")
	}
	return c.Status(http.StatusOK).JSON(profile)
}

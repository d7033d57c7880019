package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/services"
)

type ClaimHandler struct {
	claimService *services.ClaimService
}

func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

func (h *ClaimHandler) Register(api fiber.Router) {
	claims := api.Group("/claims")
	claims.Get("/", h.ListClaims)
	claims.Get("/:id", h.GetClaim)
	claims.Post("/", h.CreateClaim)
	claims.Put("/:id", h.UpdateClaim)
	claims.Delete("/:id", h.DeleteClaim)
}

func (h *ClaimHandler) ListClaims(c fiber.Ctx) error {
	claims, err := h.claimService.ListClaims(c.Context())
	if err != nil {
		return writeServiceError(c, err, "Claim not found")
	}
	return c.Status(http.StatusOK).JSON(claims)
}

func (h *ClaimHandler) GetClaim(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Claim not found")
	}

	claim, err := h.claimService.GetClaim(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Claim not found")
	}
	return c.Status(http.StatusOK).JSON(claim)
}

func (h *ClaimHandler) CreateClaim(c fiber.Ctx) error {
	var req models.CreateClaimRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid claim data")
	}

	claim, err := h.claimService.CreateClaim(c.Context(), req)
	if err != nil {
		return writeServiceError(c, err, "Claim not found")
	}
	return c.Status(http.StatusCreated).JSON(claim)
}

func (h *ClaimHandler) UpdateClaim(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Claim not found")
	}

	var req models.UpdateClaimRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid claim data")
	}

	claim, err := h.claimService.UpdateClaim(c.Context(), id, req)
	if err != nil {
		return writeServiceError(c, err, "Claim not found")
	}
	return c.Status(http.StatusOK).JSON(claim)
}

func (h *ClaimHandler) DeleteClaim(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Claim not found")
	}

	deleted, err := h.claimService.DeleteClaim(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Claim not found")
	}
	if !deleted {
		return writeMessage(c, http.StatusNotFound, "Claim not found")
	}
	return c.SendStatus(http.StatusNoContent)
}

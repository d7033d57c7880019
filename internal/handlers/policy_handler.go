package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/services"
)

type PolicyHandler struct {
	policyService *services.PolicyService
}

func NewPolicyHandler(policyService *services.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

func (h *PolicyHandler) Register(api fiber.Router) {
	policies := api.Group("/policies")
	policies.Get("/", h.ListPolicies)
	policies.Get("/:id", h.GetPolicy)
	policies.Post("/", h.CreatePolicy)
	policies.Put("/:id", h.UpdatePolicy)
	policies.Delete("/:id", h.DeletePolicy)
}

func (h *PolicyHandler) ListPolicies(c fiber.Ctx) error {
	policies, err := h.policyService.ListPolicies(c.Context())
	if err != nil {
		return writeServiceError(c, err, "Policy not found")
	}
	return c.Status(http.StatusOK).JSON(policies)
}

func (h *PolicyHandler) GetPolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Policy not found")
	}

	policy, err := h.policyService.GetPolicy(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Policy not found")
	}
	return c.Status(http.StatusOK).JSON(policy)
}

func (h *PolicyHandler) CreatePolicy(c fiber.Ctx) error {
	var req models.CreatePolicyRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid policy data")
	}

	policy, err := h.policyService.CreatePolicy(c.Context(), req)
	if err != nil {
		return writeServiceError(c, err, "Policy not found")
	}
	return c.Status(http.StatusCreated).JSON(policy)
}

func (h *PolicyHandler) UpdatePolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Policy not found")
	}

	var req models.UpdatePolicyRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid policy data")
	}

	policy, err := h.policyService.UpdatePolicy(c.Context(), id, req)
	if err != nil {
		return writeServiceError(c, err, "Policy not found")
	}
	return c.Status(http.StatusOK).JSON(policy)
}

func (h *PolicyHandler) DeletePolicy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Policy not found")
	}

	deleted, err := h.policyService.DeletePolicy(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Policy not found")
	}
	if !deleted {
		return writeMessage(c, http.StatusNotFound, "Policy not found")
	}
	return c.SendStatus(http.StatusNoContent)
}

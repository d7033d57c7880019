package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/services"
)

type PipelineLeadHandler struct {
	leadService *services.PipelineLeadService
}

func NewPipelineLeadHandler(leadService *services.PipelineLeadService) *PipelineLeadHandler {
	return &PipelineLeadHandler{leadService: leadService}
}

func (h *PipelineLeadHandler) Register(api fiber.Router) {
	leads := api.Group("/pipeline-leads")
	leads.Get("/", h.ListLeads)
	leads.Get("/metrics", h.GetMetrics)
	leads.Get("/:id", h.GetLead)
	leads.Post("/", h.CreateLead)
	leads.Put("/:id", h.UpdateLead)
	leads.Put("/:id/stage", h.ChangeStage)
	leads.Delete("/:id", h.DeleteLead)
}

func (h *PipelineLeadHandler) ListLeads(c fiber.Ctx) error {
	filter := models.LeadFilter{
		Search:        c.Query("search"),
		InsuranceType: models.InsuranceType(c.Query("insurance_type")),
	}

	leads, err := h.leadService.ListLeads(c.Context(), filter)
	if err != nil {
		return writeServiceError(c, err, "Pipeline lead not found")
	}
	return c.Status(http.StatusOK).JSON(leads)
}

func (h *PipelineLeadHandler) GetMetrics(c fiber.Ctx) error {
	metrics, err := h.leadService.Metrics(c.Context())
	if err != nil {
		return writeServiceError(c, err, "Pipeline lead not found")
	}
	return c.Status(http.StatusOK).JSON(metrics)
}

func (h *PipelineLeadHandler) GetLead(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Pipeline lead not found")
	}

	lead, err := h.leadService.GetLead(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Pipeline lead not found")
	}
	return c.Status(http.StatusOK).JSON(lead)
}

func (h *PipelineLeadHandler) CreateLead(c fiber.Ctx) error {
	var req models.CreateLeadRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid pipeline lead data")
	}

	lead, err := h.leadService.CreateLead(c.Context(), req)
	if err != nil {
		return writeServiceError(c, err, "Pipeline lead not found")
	}
	return c.Status(http.StatusCreated).JSON(lead)
}

func (h *PipelineLeadHandler) UpdateLead(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Pipeline lead not found")
	}

	var req models.UpdateLeadRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid pipeline lead data")
	}

	lead, err := h.leadService.UpdateLead(c.Context(), id, req)
	if err != nil {
		return writeServiceError(c, err, "Pipeline lead not found")
	}
	return c.Status(http.StatusOK).JSON(lead)
}

// ChangeStage is the drag-and-drop path: the board drops a card into a
// column and sends only the target stage.
func (h *PipelineLeadHandler) ChangeStage(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Pipeline lead not found")
	}

	var req models.ChangeStageRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid stage data")
	}

	lead, err := h.leadService.ChangeStage(c.Context(), id, req.Status)
	if err != nil {
		return writeServiceError(c, err, "Pipeline lead not found")
	}
	return c.Status(http.StatusOK).JSON(lead)
}

func (h *PipelineLeadHandler) DeleteLead(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Pipeline lead not found")
	}

	deleted, err := h.leadService.DeleteLead(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Pipeline lead not found")
	}
	if !deleted {
		return writeMessage(c, http.StatusNotFound, "Pipeline lead not found")
	}
	return c.SendStatus(http.StatusNoContent)
}

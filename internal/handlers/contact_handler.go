package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/services"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Register(api fiber.Router) {
	contacts := api.Group("/contacts")
	contacts.Get("/", h.ListContacts)
	contacts.Get("/:id", h.GetContact)
	contacts.Post("/", h.CreateContact)
	contacts.Put("/:id", h.UpdateContact)
	contacts.Delete("/:id", h.DeleteContact)
}

func (h *ContactHandler) ListContacts(c fiber.Ctx) error {
	contacts, err := h.contactService.ListContacts(c.Context())
	if err != nil {
		return writeServiceError(c, err, "Contact not found")
	}
	return c.Status(http.StatusOK).JSON(contacts)
}

func (h *ContactHandler) GetContact(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Contact not found")
	}

	contact, err := h.contactService.GetContact(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Contact not found")
	}
	return c.Status(http.StatusOK).JSON(contact)
}

func (h *ContactHandler) CreateContact(c fiber.Ctx) error {
	var req models.CreateContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid contact data")
	}

	contact, err := h.contactService.CreateContact(c.Context(), req)
	if err != nil {
		return writeServiceError(c, err, "Contact not found")
	}
	return c.Status(http.StatusCreated).JSON(contact)
}

func (h *ContactHandler) UpdateContact(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Contact not found")
	}

	var req models.UpdateContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid contact data")
	}

	contact, err := h.contactService.UpdateContact(c.Context(), id, req)
	if err != nil {
		return writeServiceError(c, err, "Contact not found")
	}
	return c.Status(http.StatusOK).JSON(contact)
}

func (h *ContactHandler) DeleteContact(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Contact not found")
	}

	deleted, err := h.contactService.DeleteContact(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Contact not found")
	}
	if !deleted {
		return writeMessage(c, http.StatusNotFound, "Contact not found")
	}
	return c.SendStatus(http.StatusNoContent)
}

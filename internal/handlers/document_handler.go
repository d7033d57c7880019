package handlers

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/services"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) Register(api fiber.Router) {
	documents := api.Group("/documents")
	documents.Get("/", h.ListDocuments)
	documents.Post("/upload", h.UploadDocument)
	documents.Get("/:id", h.GetDocument)
	documents.Get("/:id/download", h.DownloadDocument)
	documents.Delete("/:id", h.DeleteDocument)
}

func (h *DocumentHandler) ListDocuments(c fiber.Ctx) error {
	documents, err := h.documentService.ListDocuments(c.Context())
	if err != nil {
		return writeServiceError(c, err, "Document not found")
	}
	return c.Status(http.StatusOK).JSON(documents)
}

func (h *DocumentHandler) UploadDocument(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeMessage(c, http.StatusBadRequest, "No file uploaded")
	}
	if fileHeader.Size > services.MaxUploadSize {
		return writeMessage(c, http.StatusBadRequest, "File exceeds the 10MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeMessage(c, http.StatusBadRequest, "Failed to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return writeMessage(c, http.StatusBadRequest, "Failed to read uploaded file")
	}

	input := services.UploadInput{
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Data:         data,
		Category:     models.DocumentCategory(c.FormValue("category")),
		ContactID:    parseOptionalID(c.FormValue("contactId")),
		PolicyID:     parseOptionalID(c.FormValue("policyId")),
		ClaimID:      parseOptionalID(c.FormValue("claimId")),
	}

	document, err := h.documentService.Upload(c.Context(), input)
	if err != nil {
		return writeServiceError(c, err, "Document not found")
	}
	return c.Status(http.StatusCreated).JSON(document)
}

func (h *DocumentHandler) GetDocument(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Document not found")
	}

	document, err := h.documentService.GetDocument(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Document not found")
	}
	return c.Status(http.StatusOK).JSON(document)
}

// DownloadDocument hands out a short-lived object-store URL instead of
// proxying the file bytes through the API.
func (h *DocumentHandler) DownloadDocument(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Document not found")
	}

	url, err := h.documentService.DownloadURL(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Document not found")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"url": url})
}

func (h *DocumentHandler) DeleteDocument(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeMessage(c, http.StatusNotFound, "Document not found")
	}

	deleted, err := h.documentService.DeleteDocument(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Document not found")
	}
	if !deleted {
		return writeMessage(c, http.StatusNotFound, "Document not found")
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseOptionalID(value string) *uuid.UUID {
	if value == "" {
		return nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil
	}
	return &id
}

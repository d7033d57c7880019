package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/valvesss/weseg-replit/internal/repository"
	"github.com/valvesss/weseg-replit/internal/services"
)

func writeMessage(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// writeServiceError maps the error taxonomy onto HTTP statuses:
// validation failures are client errors, missing ids are not-found,
// everything else is a logged server error.
func writeServiceError(c fiber.Ctx, err error, notFoundMessage string) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return writeMessage(c, http.StatusBadRequest, verr.Error())
	}
	if errors.Is(err, repository.ErrNotFound) {
		return writeMessage(c, http.StatusNotFound, notFoundMessage)
	}
	slog.Error("request failed", "path", c.Path(), "method", c.Method(), "error", err)
	return writeMessage(c, http.StatusInternalServerError, "Internal server error")
}

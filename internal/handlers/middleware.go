package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/valvesss/weseg-replit/internal/services"
)

type Middleware struct {
	sessionService *services.SessionService
}

func NewMiddleware(sessionService *services.SessionService) *Middleware {
	return &Middleware{sessionService: sessionService}
}

// RequireSession guards the resource routes: without a valid session
// cookie the request stops at 401.
func (m *Middleware) RequireSession(c fiber.Ctx) error {
	session, err := m.sessionService.ValidateSession(c.Context(), c.Cookies(SessionCookieName))
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return writeMessage(c, http.StatusUnauthorized, "Not authenticated")
		}
		slog.Error("session validation failed", "error", err)
		return writeMessage(c, http.StatusInternalServerError, "Internal server error")
	}

	c.Locals("broker_email", session.Email)
	return c.Next()
}

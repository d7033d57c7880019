package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/valvesss/weseg-replit/internal/models"
	"github.com/valvesss/weseg-replit/internal/services"
)

// SessionCookieName carries the broker session id; the cookie is opaque,
// all session state lives server-side in Redis.
const SessionCookieName = "session_id"

type AuthHandler struct {
	authService *services.AuthService
	sessionTTL  time.Duration
}

func NewAuthHandler(authService *services.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionTTL:  sessionTTL,
	}
}

func (h *AuthHandler) Register(app *fiber.App) {
	auth := app.Group("/api/auth")
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/user", h.CurrentUser)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Invalid login data")
	}

	session, err := h.authService.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return writeMessage(c, http.StatusUnauthorized, "Invalid email or password")
		}
		slog.Error("login failed", "error", err)
		return writeMessage(c, http.StatusInternalServerError, "Internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.Status(http.StatusOK).JSON(models.AuthUser{Email: session.Email})
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	sessionID := c.Cookies(SessionCookieName)
	if sessionID != "" {
		if err := h.authService.Logout(c.Context(), sessionID); err != nil {
			slog.Error("logout failed", "error", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		Path:     "/",
	})
	return c.SendStatus(http.StatusNoContent)
}

func (h *AuthHandler) CurrentUser(c fiber.Ctx) error {
	user, err := h.authService.CurrentUser(c.Context(), c.Cookies(SessionCookieName))
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			return writeMessage(c, http.StatusUnauthorized, "Not authenticated")
		}
		slog.Error("failed to resolve current user", "error", err)
		return writeMessage(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.Status(http.StatusOK).JSON(user)
}

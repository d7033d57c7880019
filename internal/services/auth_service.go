package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/valvesss/weseg-replit/internal/models"
)

// ErrInvalidCredentials keeps wrong-email and wrong-password responses
// indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the single configured broker account and
// hands out Redis-backed sessions.
type AuthService struct {
	brokerEmail  string
	passwordHash []byte
	sessions     *SessionService
}

func NewAuthService(brokerEmail, brokerPassword string, sessions *SessionService) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(brokerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash broker password: %w", err)
	}
	return &AuthService{
		brokerEmail:  brokerEmail,
		passwordHash: hash,
		sessions:     sessions,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.BrokerSession, error) {
	if req.Email != s.brokerEmail {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.sessions.CreateSession(ctx, req.Email)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteSession(ctx, sessionID)
}

// CurrentUser resolves the session cookie to the authenticated identity.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*models.AuthUser, error) {
	session, err := s.sessions.ValidateSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.AuthUser{Email: session.Email}, nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/valvesss/weseg-replit/internal/models"
)

// ErrSessionNotFound means the cookie points at an expired or unknown
// session; callers map it to 401.
var ErrSessionNotFound = errors.New("session not found")

// SessionService keeps broker sessions in Redis with a sliding TTL.
type SessionService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionService(client *redis.Client, ttl time.Duration) *SessionService {
	return &SessionService{
		client: client,
		ttl:    ttl,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, email string) (*models.BrokerSession, error) {
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	now := time.Now()
	session := &models.BrokerSession{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.sessionKey(session.ID), data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

// ValidateSession loads a session and slides its expiry forward.
func (s *SessionService) ValidateSession(ctx context.Context, sessionID string) (*models.BrokerSession, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	data, err := s.client.Get(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.BrokerSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if err := s.client.Expire(ctx, s.sessionKey(sessionID), s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to renew session: %w", err)
	}
	return &session, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *SessionService) sessionKey(sessionID string) string {
	return "session:" + sessionID
}

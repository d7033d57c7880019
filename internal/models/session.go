package models

import "time"

// BrokerSession is the server-side session record stored in Redis.
type BrokerSession struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is what GET /api/auth/user returns.
type AuthUser struct {
	Email string `json:"email"`
}

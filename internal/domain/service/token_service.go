package service

import (
	"time"

	"wayfinder/internal/domain/entity"
)

// TokenService issues and validates the bearer tokens that carry a session.
type TokenService interface {
	// GenerateToken signs a token embedding the session claims.
	GenerateToken(session entity.Session, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a token, returning the embedded session.
	ValidateToken(tokenString string) (*entity.Session, error)
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string // Secret key for signing access tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// GenerateToken signs a token embedding the session claims.
func (s *jwtService) GenerateToken(session entity.Session, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  session.UserID.String(),    // Subject (who the token is for)
		"org":  session.OrganizationID.String(),
		"role": session.Role,
		"iat":  time.Now().Unix(),          // Issued At
		"exp":  time.Now().Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// ValidateToken parses and verifies a token, returning the embedded session.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}

	session := &entity.Session{UserID: userID}

	if org, ok := claims["org"].(string); ok {
		if orgID, err := uuid.Parse(org); err == nil {
			session.OrganizationID = orgID
		}
	}
	if role, ok := claims["role"].(string); ok {
		session.Role = role
	}

	return session, nil
}

package auth

import (
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	session := entity.Session{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
		Role:           "admin",
	}

	token, err := jwtService.GenerateToken(session, time.Minute*15)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, parsed)
	assert.Equal(t, session.UserID, parsed.UserID)
	assert.Equal(t, session.OrganizationID, parsed.OrganizationID)
	assert.Equal(t, "admin", parsed.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	session, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(entity.Session{UserID: uuid.New()}, -time.Minute)
	assert.NoError(t, err)

	session, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	verifier, err := NewJWTService(testConfig("different_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := issuer.GenerateToken(entity.Session{UserID: uuid.New()}, time.Minute)
	assert.NoError(t, err)

	session, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

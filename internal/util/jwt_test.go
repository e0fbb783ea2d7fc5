package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smart-mall-backend/config"
)

func init() {
	config.AppConfig.JWTSecret = "test-secret-key-for-unit-tests-only"
	config.AppConfig.AccessTokenExpireMin = 30
	config.AppConfig.RefreshTokenExpireHour = 168
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("u1", "merchant01", "MERCHANT")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "merchant01", claims.Username)
	assert.Equal(t, "MERCHANT", claims.UserType)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenHasNoProfile(t *testing.T) {
	token, err := GenerateRefreshToken("u1")
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	assert.Empty(t, claims.Username)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}

func TestNewIDFormat(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, NewID())
}

package jwtutil

import (
	"testing"
	"time"

	"github.com/An2rei-84/skystore/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-key", ExpirationTime: time.Hour})

	token, err := GenerateToken("user@example.com", 42)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestExpiredTokenRejected(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-key", ExpirationTime: -time.Hour})

	token, err := GenerateToken("user@example.com", 42)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenSignedWithDifferentKeyRejected(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "key-one", ExpirationTime: time.Hour})
	token, err := GenerateToken("user@example.com", 42)
	require.NoError(t, err)

	Initialize(&config.JWTConfig{SigningKey: "key-two", ExpirationTime: time.Hour})
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-key", ExpirationTime: time.Hour})
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

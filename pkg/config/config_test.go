package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "skystore_db", cfg.DB.Name)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpirationTime)
	assert.Equal(t, "skystore", cfg.Metrics.Prefix)
	assert.False(t, cfg.Email.Enabled)
	assert.Equal(t, "operator@skystore.local", cfg.Email.Recipient)
	assert.Equal(t, 5, cfg.Catalog.PageSize)
	assert.NotEmpty(t, cfg.Catalog.ForbiddenWords)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("EMAIL_ENABLED", "true")
	t.Setenv("EMAIL_RECIPIENT", "ops@example.com")
	t.Setenv("JWT_EXPIRATION", "2h")
	t.Setenv("CATALOG_FORBIDDEN_WORDS", "foo, bar,baz")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.Email.Enabled)
	assert.Equal(t, "ops@example.com", cfg.Email.Recipient)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpirationTime)
	assert.Equal(t, []string{"foo", "bar", "baz"}, cfg.Catalog.ForbiddenWords)
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")
	t.Setenv("EMAIL_ENABLED", "not-a-bool")
	t.Setenv("JWT_EXPIRATION", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
	assert.False(t, cfg.Email.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpirationTime)
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: "5433", User: "sky", Password: "pw",
		Name: "store", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5433 user=sky password=pw dbname=store sslmode=disable",
		db.GetDSN())
}

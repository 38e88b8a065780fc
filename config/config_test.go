package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DSN", "user:pass@tcp(localhost:3306)/quicknotes")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3002", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, "quicknotes", cfg.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ADDR", ":9000")
	t.Setenv("JWT_TOKEN_TTL", "1h")
	t.Setenv("S3_BUCKET", "attachments")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, "attachments", cfg.S3.Bucket)
}

func TestLoadTTLInSeconds(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_TOKEN_TTL", "3600")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWT.TokenTTL)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Run("missing DSN", func(t *testing.T) {
		t.Setenv("DSN", "")
		t.Setenv("JWT_SECRET", "test-secret")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing JWT secret", func(t *testing.T) {
		t.Setenv("DSN", "user:pass@tcp(localhost:3306)/quicknotes")
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_ADDRESS", "DATABASE_PATH", "CATALOG_PATH",
		"JWT_SECRET", "JWT_TTL_HOURS", "BCRYPT_COST",
		"ADMIN_EMAIL", "ADMIN_PASSWORD", "ADMIN_INVITE_CODE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "data/tiny-home-guide.db", cfg.DatabasePath)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, "dev-secret-change-me", cfg.JWTSecret)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.AdminEmail)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_ADDRESS", "127.0.0.1:8080")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_TTL_HOURS", "24")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CATALOG_PATH", "/etc/guide/catalog.json")
	t.Setenv("ADMIN_INVITE_CODE", "letmein")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "/etc/guide/catalog.json", cfg.CatalogPath)
	assert.Equal(t, "letmein", cfg.AdminInviteCode)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric ttl", "JWT_TTL_HOURS", "soon"},
		{"zero ttl", "JWT_TTL_HOURS", "0"},
		{"non-numeric cost", "BCRYPT_COST", "cheap"},
		{"cost too low", "BCRYPT_COST", "1"},
		{"cost too high", "BCRYPT_COST", "20"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

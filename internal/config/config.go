// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Addr         string
	DatabasePath string
	// CatalogPath optionally overrides the built-in catalog with a JSON
	// snapshot. Empty means use the compiled-in defaults.
	CatalogPath string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	// Admin bootstrap: when both are set, an admin account is created at
	// startup if it does not exist yet.
	AdminEmail      string
	AdminPassword   string
	AdminInviteCode string
}

// Load reads configuration from environment variables and validates it.
func Load() (Config, error) {
	cfg := Config{
		Addr:            getEnv("API_ADDRESS", ":4000"),
		DatabasePath:    getEnv("DATABASE_PATH", "data/tiny-home-guide.db"),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		AdminInviteCode: os.Getenv("ADMIN_INVITE_CODE"),
	}

	ttlHours, err := getEnvInt("JWT_TTL_HOURS", 168)
	if err != nil {
		return Config{}, err
	}
	if ttlHours < 1 {
		return Config{}, fmt.Errorf("JWT_TTL_HOURS must be at least 1, got %d", ttlHours)
	}
	cfg.JWTTTL = time.Duration(ttlHours) * time.Hour

	cost, err := getEnvInt("BCRYPT_COST", 10)
	if err != nil {
		return Config{}, err
	}
	if cost < bcrypt.MinCost || cost > 15 {
		return Config{}, fmt.Errorf("BCRYPT_COST out of range: %d", cost)
	}
	cfg.BcryptCost = cost

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

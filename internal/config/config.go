package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Session storage. Empty means in-memory sessions.
	RedisURL string

	// OIDC
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
	OIDCOwnerClaim   string // claim carrying the agent's owner (tenant) id

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// Search
	PageSize int // results per page on the lead search page

	// Audit log retention. Zero disables the pruner.
	LogRetention time.Duration

	// Site Branding
	SiteTitle  string // env: SITE_TITLE, default: "Lead Search"
	SiteFooter string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
// A present but unusable value is an error, so a bad PAGE_SIZE is caught at
// startup rather than on the first request.
func Load() (*Config, error) {
	cfg := &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":3000"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:      getEnv("DATABASE_URL", "postgres://localhost:5432/leadsearch?sslmode=disable"),
		RedisURL:         getEnv("REDIS_URL", ""),
		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		OIDCOwnerClaim:   getEnv("OIDC_OWNER_CLAIM", "owner_id"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),

		SiteTitle:  getEnv("SITE_TITLE", "Lead Search"),
		SiteFooter: getEnv("SITE_FOOTER", "Lead Search - agent lead lookup"),
	}

	pageSize, err := strconv.Atoi(getEnv("PAGE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAGE_SIZE: %w", err)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be at least 1, got %d", pageSize)
	}
	cfg.PageSize = pageSize

	cfg.LogRetention, err = time.ParseDuration(getEnv("LOG_RETENTION", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_RETENTION: %w", err)
	}
	if cfg.LogRetention < 0 {
		return nil, fmt.Errorf("LOG_RETENTION must not be negative, got %s", cfg.LogRetention)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds server runtime configuration sourced from env vars.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
	CORSOrigins []string
}

// Load reads server configuration from the environment and performs
// minimal validation. Tokens carry no TTL setting: validity is signature
// plus account state only.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "3000"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:   fallback(os.Getenv("JWT_ISSUER"), "brandmate-backend"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return Config{}, errors.New("JWT_SECRET must be at least 32 bytes")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// ClientConfig holds settings for the CLI client.
type ClientConfig struct {
	APIBaseURL  string
	SessionPath string
	HTTPTimeout time.Duration
}

// LoadClient reads client configuration from the environment. All values
// have defaults; the timeout is mandatory so every request resolves.
func LoadClient() ClientConfig {
	cfg := ClientConfig{
		APIBaseURL:  fallback(os.Getenv("BRANDMATE_API_URL"), "http://localhost:3000"),
		SessionPath: fallback(os.Getenv("BRANDMATE_SESSION_DB"), defaultSessionPath()),
		HTTPTimeout: 10 * time.Second,
	}
	if secs, err := strconv.Atoi(os.Getenv("BRANDMATE_HTTP_TIMEOUT_SECONDS")); err == nil && secs > 0 {
		cfg.HTTPTimeout = time.Duration(secs) * time.Second
	}
	return cfg
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "brandmate-session.db"
	}
	return home + string(os.PathSeparator) + ".brandmate-session.db"
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

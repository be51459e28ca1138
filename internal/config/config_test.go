package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadRequiresDatabaseURLAndSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/brandmate")
	_, err = Load()
	require.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "too-short")
	_, err = Load()
	require.ErrorContains(t, err, "32 bytes")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/brandmate")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.HTTPAddress())
	require.Equal(t, "brandmate-backend", cfg.JWTIssuer)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadParsesCORSList(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/brandmate")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadClientDefaultsAndTimeout(t *testing.T) {
	t.Setenv("BRANDMATE_API_URL", "")
	t.Setenv("BRANDMATE_HTTP_TIMEOUT_SECONDS", "")

	cfg := LoadClient()
	require.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)

	t.Setenv("BRANDMATE_HTTP_TIMEOUT_SECONDS", "3")
	require.Equal(t, 3*time.Second, LoadClient().HTTPTimeout)

	t.Setenv("BRANDMATE_HTTP_TIMEOUT_SECONDS", "-1")
	require.Equal(t, 10*time.Second, LoadClient().HTTPTimeout)
}

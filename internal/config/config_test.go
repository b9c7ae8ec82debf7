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
		"PORT", "MONGO_URI", "MONGO_DATABASE", "POSTGRES_URL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"SESSION_SECRET", "SESSION_TTL", "COOKIE_SECURE", "FRONTEND_URL", "ALLOW_ORIGINS",
		"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_CALLBACK_URL",
		"GENERATION_PROVIDER", "GENERATION_MODEL", "GENERATION_HTTP_TIMEOUT", "GENERATE_RATE_PER_MINUTE",
		"GROQ_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("FRONTEND_URL", "https://wanderly.example/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "wanderly", cfg.MongoDatabase)
	assert.Equal(t, "groq", cfg.GenerationProvider)
	assert.Equal(t, "gsk_test", cfg.GenerationAPIKey)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 90*time.Second, cfg.GenerationHTTPTimeout)
	assert.Equal(t, 10, cfg.GenerateRatePerMinute)
	assert.Equal(t, "https://wanderly.example", cfg.FrontendURL)
	assert.Equal(t, []string{"https://wanderly.example"}, cfg.AllowOrigins)
	assert.False(t, cfg.CookieSecure)
	assert.False(t, cfg.GoogleEnabled())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("GENERATION_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("ALLOW_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.GenerationProvider)
	assert.Equal(t, "g-key", cfg.GenerationAPIKey)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowOrigins)
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.GoogleEnabled())
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing session secret": {"GROQ_API_KEY": "k"},
		"missing provider key":   {"SESSION_SECRET": "s"},
		"unknown provider":       {"SESSION_SECRET": "s", "GENERATION_PROVIDER": "llama"},
		"bad duration":           {"SESSION_SECRET": "s", "GROQ_API_KEY": "k", "SESSION_TTL": "forever"},
		"bad rate":               {"SESSION_SECRET": "s", "GROQ_API_KEY": "k", "GENERATE_RATE_PER_MINUTE": "ten"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	MongoURI      string
	MongoDatabase string
	PostgresURL   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool
	FrontendURL   string
	AllowOrigins  []string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string

	GenerationProvider    string
	GenerationAPIKey      string
	GenerationModel       string
	GenerationHTTPTimeout time.Duration
	GenerateRatePerMinute int
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:          getEnvWithDefault("PORT", "5000"),
		MongoURI:      getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvWithDefault("MONGO_DATABASE", "wanderly"),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		FrontendURL:   strings.TrimRight(getEnvWithDefault("FRONTEND_URL", "http://localhost:3000"), "/"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  getEnvWithDefault("GOOGLE_CALLBACK_URL", "http://localhost:5000/auth/google/callback"),

		GenerationProvider: strings.ToLower(getEnvWithDefault("GENERATION_PROVIDER", "groq")),
		GenerationModel:    os.Getenv("GENERATION_MODEL"),
	}

	var err error
	if cfg.SessionSecret, err = mustEnv("SESSION_SECRET"); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getIntWithDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDurationWithDefault("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.GenerationHTTPTimeout, err = getDurationWithDefault("GENERATION_HTTP_TIMEOUT", 90*time.Second); err != nil {
		return nil, err
	}
	if cfg.GenerateRatePerMinute, err = getIntWithDefault("GENERATE_RATE_PER_MINUTE", 10); err != nil {
		return nil, err
	}
	cfg.CookieSecure, err = strconv.ParseBool(getEnvWithDefault("COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
	}

	cfg.AllowOrigins = splitList(getEnvWithDefault("ALLOW_ORIGINS", cfg.FrontendURL))

	switch cfg.GenerationProvider {
	case "groq":
		cfg.GenerationAPIKey, err = mustEnv("GROQ_API_KEY")
	case "openai":
		cfg.GenerationAPIKey, err = mustEnv("OPENAI_API_KEY")
	case "gemini":
		cfg.GenerationAPIKey, err = mustEnv("GEMINI_API_KEY")
	default:
		err = fmt.Errorf("unsupported GENERATION_PROVIDER: %s. Use 'groq', 'openai' or 'gemini'", cfg.GenerationProvider)
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// GoogleEnabled reports whether the Google login routes can be served.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

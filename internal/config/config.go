package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SessionProviderJWT    = "jwt"
	SessionProviderGoogle = "google"
)

type Config struct {
	Port              string
	DatabaseURL       string
	SessionProvider   string
	JWTSecret         string
	GoogleClientID    string
	SessionCookie     string
	VoteRatePerMinute int
	VoteRateBurst     int
	LogLevel          slog.Level
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("APP_PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", postgresURLFromParts()),
		SessionProvider:   strings.ToLower(getEnv("SESSION_PROVIDER", SessionProviderJWT)),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GoogleClientID:    os.Getenv("GOOGLE_CLIENT_ID"),
		SessionCookie:     getEnv("SESSION_COOKIE", "access_token"),
		VoteRatePerMinute: getEnvInt("VOTE_RATE_PER_MINUTE", 30),
		VoteRateBurst:     getEnvInt("VOTE_RATE_BURST", 5),
		LogLevel:          parseLevel(getEnv("LOG_LEVEL", "info")),
	}

	switch cfg.SessionProvider {
	case SessionProviderJWT:
		if cfg.JWTSecret == "" {
			return cfg, fmt.Errorf("JWT_SECRET is required when SESSION_PROVIDER=%s", SessionProviderJWT)
		}
	case SessionProviderGoogle:
		if cfg.GoogleClientID == "" {
			return cfg, fmt.Errorf("GOOGLE_CLIENT_ID is required when SESSION_PROVIDER=%s", SessionProviderGoogle)
		}
	default:
		return cfg, fmt.Errorf("unknown SESSION_PROVIDER %q", cfg.SessionProvider)
	}

	if cfg.VoteRatePerMinute <= 0 || cfg.VoteRateBurst <= 0 {
		return cfg, fmt.Errorf("vote rate limits must be positive")
	}

	return cfg, nil
}

// PostgresURL builds a DSN from the POSTGRES_* variables.
func PostgresURL() string {
	return postgresURLFromParts()
}

func postgresURLFromParts() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "postgres"),
		getEnv("POSTGRES_PASSWORD", "postgres"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "polly"),
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

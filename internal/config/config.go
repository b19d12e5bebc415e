// internal/config/config.go
//
// Environment-driven server configuration. .env is loaded by main before
// Load runs; every key has a development default.

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds the settings read from the environment at startup.
type Config struct {
	Port            string
	LogLevel        string
	ClientOrigin    string
	JWTSecret       string
	CookieName      string
	Production      bool
	SessionIdleTTL  time.Duration
	CleanupInterval time.Duration
	WordsFile       string
	DailySalt       string
}

// Load reads every setting, falling back to defaults for unset keys.
func Load() *Config {
	return &Config{
		Port:            GetEnv("PORT", "5175"),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		ClientOrigin:    GetEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:       GetEnv("JWT_SECRET", "dev-secret-change-me"),
		CookieName:      GetEnv("COOKIE_NAME", "hub_token"),
		Production:      GetEnv("NODE_ENV", "") == "production",
		SessionIdleTTL:  GetEnvAsDuration("SESSION_IDLE_TTL", 2*time.Hour),
		CleanupInterval: GetEnvAsDuration("CLEANUP_INTERVAL", 10*time.Minute),
		WordsFile:       GetEnv("WORDS_FILE", ""),
		DailySalt:       GetEnv("DAILY_SALT", "gaming-hub"),
	}
}

// GetEnv returns the value of key, or defaultValue when unset or empty.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsInt parses key as an integer, logging and falling back on bad input.
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts Go durations ("90s", "2h") or plain seconds.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil && d > 0 {
		return d
	}
	if secs := GetEnvAsInt(key, -1); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	log.Warn().Str("key", key).Str("value", valueStr).Dur("default", defaultValue).Msg("invalid duration, using default")
	return defaultValue
}

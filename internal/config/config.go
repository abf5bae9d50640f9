// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

// Config holds application configuration
type Config struct {
	Port           string
	GinMode        string
	LogLevel       slog.Level
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	AllowedOrigins []string
	EnableSwagger  bool

	RateLimit RateLimitConfig
	Redis     RedisConfig
	CacheTTL  time.Duration
}

// RateLimitConfig controls per-IP limiting of the scoring endpoints
type RateLimitConfig struct {
	PerMinute       int
	BurstMultiplier int
}

// RedisConfig is optional; an empty Addr keeps rate limiting in memory
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// FieldError reports one invalid setting
type FieldError struct {
	Key    string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return e.Key + " " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func invalid(errs *error, key, reason string, cause error) {
	multierr.AppendInto(errs, &FieldError{Key: key, Reason: reason, Err: cause})
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only
func FromEnv() (*Config, error) {
	var errs error

	level := parseLevel(getEnv("LOG_LEVEL", "info"), &errs)

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		LogLevel:       level,
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second, &errs),
		MaxBodyBytes:   int64(getEnvAsInt("MAX_BODY_BYTES", 16384, &errs)),
		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		EnableSwagger:  getEnvAsBool("ENABLE_SWAGGER", true, &errs),
		RateLimit: RateLimitConfig{
			PerMinute:       getEnvAsInt("RATE_LIMIT_PER_MIN", 60, &errs),
			BurstMultiplier: getEnvAsInt("RATE_LIMIT_BURST_MULTIPLIER", 2, &errs),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0, &errs),
		},
		CacheTTL: getEnvAsDuration("CACHE_TTL", 15*time.Minute, &errs),
	}

	if cfg.RateLimit.PerMinute <= 0 {
		invalid(&errs, "RATE_LIMIT_PER_MIN", "must be positive", nil)
	}
	if cfg.RateLimit.BurstMultiplier <= 0 {
		invalid(&errs, "RATE_LIMIT_BURST_MULTIPLIER", "must be positive", nil)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		invalid(&errs, "GIN_MODE", fmt.Sprintf("%q must be debug, release or test", cfg.GinMode), nil)
	}
	if cfg.MaxBodyBytes <= 0 {
		invalid(&errs, "MAX_BODY_BYTES", "must be positive", nil)
	}

	if errs != nil {
		return nil, fmt.Errorf("invalid configuration: %w", errs)
	}

	return cfg, nil
}

func parseLevel(s string, errs *error) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		invalid(errs, "LOG_LEVEL", fmt.Sprintf("%q is not a valid level", s), err)
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int, errs *error) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		invalid(errs, key, "must be an integer", err)
		return defaultValue
	}
	return i
}

func getEnvAsBool(key string, defaultValue bool, errs *error) bool {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		invalid(errs, key, "must be a boolean", err)
		return defaultValue
	}
	return b
}

func getEnvAsDuration(key string, defaultValue time.Duration, errs *error) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		invalid(errs, key, "must be a positive duration", err)
		return defaultValue
	}
	return d
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

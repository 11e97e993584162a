package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/passgen/passgen-go/internal/crypto"
)

const (
	devJWTSecret = "dev-secret-change-in-production"

	// DefaultJWTExpiry is the preset token lifetime when JWT_EXPIRY is unset.
	DefaultJWTExpiry = 24 * time.Hour
)

var ErrInsecureSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	JWTSecret      string
	JWTExpiry      time.Duration
	RandomSource   string
	RateLimitRPS   float64
	RateLimitBurst int

	// Budget for the page's own generate calls, one per slider step.
	PageRateLimitRPS   float64
	PageRateLimitBurst int
}

// Load reads configuration from the environment. Call godotenv.Load first
// to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passgen?parseTime=true"),
		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		RandomSource:   getEnv("PASSGEN_RANDOM", crypto.SourceMath),
		RateLimitRPS:   5,
		RateLimitBurst: 10,

		PageRateLimitRPS:   50,
		PageRateLimitBurst: crypto.MaxLength - crypto.MinLength + 1,
	}

	var err error
	if cfg.JWTExpiry, err = JWTExpiry(); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return Config{}, err
	}
	if cfg.PageRateLimitRPS, err = getFloat("PAGE_RATE_LIMIT_RPS", cfg.PageRateLimitRPS); err != nil {
		return Config{}, err
	}
	if cfg.PageRateLimitBurst, err = getInt("PAGE_RATE_LIMIT_BURST", cfg.PageRateLimitBurst); err != nil {
		return Config{}, err
	}
	if _, err := crypto.SourceByName(cfg.RandomSource); err != nil {
		return Config{}, fmt.Errorf("PASSGEN_RANDOM: %w", err)
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrInsecureSecret
	}
	if cfg.RandomSource == crypto.SourceMath {
		slog.Warn("using a general-purpose random source; set PASSGEN_RANDOM=crypto for secrets that must resist prediction")
	}

	return cfg, nil
}

// JWTExpiry reads the preset token lifetime from JWT_EXPIRY. It must be
// positive.
func JWTExpiry() (time.Duration, error) {
	d, err := getDuration("JWT_EXPIRY", DefaultJWTExpiry)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("JWT_EXPIRY: must be positive, got %s", d)
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

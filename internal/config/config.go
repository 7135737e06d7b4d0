package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	APIKey         string
	JWTSecret      string
	AllowedOrigins string
	BMIRateLimit   int
	BMIRateWindow  time.Duration
	DashboardSeed  uint64
	DashboardDays  int
	TrustProxy     bool
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		APIKey:         getEnv("API_KEY", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}

	var err error
	if cfg.BMIRateLimit, err = strconv.Atoi(getEnv("BMI_RATE_LIMIT", "120")); err != nil {
		return nil, fmt.Errorf("invalid BMI_RATE_LIMIT: %w", err)
	}
	if cfg.BMIRateWindow, err = time.ParseDuration(getEnv("BMI_RATE_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("invalid BMI_RATE_WINDOW: %w", err)
	}
	if cfg.DashboardSeed, err = strconv.ParseUint(getEnv("DASHBOARD_SEED", "42"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_SEED: %w", err)
	}
	if cfg.DashboardDays, err = strconv.Atoi(getEnv("DASHBOARD_DAYS", "30")); err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_DAYS: %w", err)
	}
	if cfg.TrustProxy, err = strconv.ParseBool(getEnv("TRUST_PROXY", "false")); err != nil {
		return nil, fmt.Errorf("invalid TRUST_PROXY: %w", err)
	}
	if cfg.DashboardDays <= 0 {
		return nil, fmt.Errorf("invalid DASHBOARD_DAYS: must be positive, got %d", cfg.DashboardDays)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

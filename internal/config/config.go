package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	return cfg
}

// Parse reads the configuration from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.AwardPolicy {
	case "weighted", "uniform":
	default:
		return Config{}, fmt.Errorf("unknown AWARD_POLICY %q", cfg.AwardPolicy)
	}
	if cfg.MaxFootballers <= 0 {
		return Config{}, fmt.Errorf("MAX_FOOTBALLERS must be positive, got %d", cfg.MaxFootballers)
	}
	if cfg.Snapshot.Attempts == 0 {
		cfg.Snapshot.Attempts = 1
	}
	return cfg, nil
}

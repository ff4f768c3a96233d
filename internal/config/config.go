package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MenuURL             string
	OutputPath          string
	DatabaseURL         string // empty disables the Postgres sink
	SatietyScoring      bool
	PageLoadTimeout     time.Duration
	ScrollInterval      time.Duration
	MaxScrollIterations int
	MinDealPrice        int
	ScrapeInterval      time.Duration // server mode; zero disables the cron
	Port                string
}

func Load() (*Config, error) {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	cfg := &Config{
		MenuURL:             "https://www.dominos.com.pk/menu",
		OutputPath:          "output/dominos_deals.json",
		SatietyScoring:      true,
		PageLoadTimeout:     15 * time.Second,
		ScrollInterval:      2 * time.Second,
		MaxScrollIterations: 20,
		MinDealPrice:        100,
		Port:                "8080",
	}

	if v := os.Getenv("MENU_URL"); v != "" {
		cfg.MenuURL = v
	}
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.OutputPath = v
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		slog.Info("DATABASE_URL not set, Postgres sink disabled")
	}

	if v := os.Getenv("SATIETY_SCORING"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SATIETY_SCORING %q: %w", v, err)
		}
		cfg.SatietyScoring = parsed
	}

	var err error
	if cfg.PageLoadTimeout, err = durationEnv("PAGE_LOAD_TIMEOUT", cfg.PageLoadTimeout); err != nil {
		return nil, err
	}
	if cfg.ScrollInterval, err = durationEnv("SCROLL_INTERVAL", cfg.ScrollInterval); err != nil {
		return nil, err
	}
	if cfg.ScrapeInterval, err = durationEnv("SCRAPE_INTERVAL", 0); err != nil {
		return nil, err
	}

	if cfg.MaxScrollIterations, err = intEnv("MAX_SCROLL_ITERATIONS", cfg.MaxScrollIterations); err != nil {
		return nil, err
	}
	if cfg.MaxScrollIterations < 1 {
		return nil, fmt.Errorf("MAX_SCROLL_ITERATIONS must be at least 1, got %d", cfg.MaxScrollIterations)
	}

	if cfg.MinDealPrice, err = intEnv("MIN_DEAL_PRICE", cfg.MinDealPrice); err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

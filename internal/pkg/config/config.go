package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type (
	API struct {
		BaseURL string
	}

	Credentials struct {
		File string
	}

	Manifest struct {
		Dir string
	}

	Metrics struct {
		Enabled bool
		Port    string
	}

	Dashboard struct {
		RecentLimit    int
		WarmupInterval time.Duration
	}

	Config struct {
		API         API
		Credentials Credentials
		Manifest    Manifest
		Metrics     Metrics
		Dashboard   Dashboard
	}
)

const (
	defaultRecentLimit    = 3
	defaultWarmupInterval = 0 // warm-up task off unless configured
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	metricsEnabled, err := osGetBool("METRICS_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	recentLimit, err := osGetInt("DASHBOARD_RECENT_LIMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if recentLimit == 0 {
		recentLimit = defaultRecentLimit
	}

	warmupInterval, err := osGetEnvDuration("DASHBOARD_WARMUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	credentialsFile := os.Getenv("PANEL_CREDENTIALS_FILE")
	if credentialsFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		credentialsFile = filepath.Join(home, ".luxpanel", "credentials.json")
	}

	manifestDir := os.Getenv("PANEL_MANIFEST_DIR")
	if manifestDir == "" {
		manifestDir = "manifests"
	}

	return &Config{
		API: API{
			BaseURL: os.Getenv("PANEL_API_BASE_URL"),
		},
		Credentials: Credentials{
			File: credentialsFile,
		},
		Manifest: Manifest{
			Dir: manifestDir,
		},
		Metrics: Metrics{
			Enabled: metricsEnabled,
			Port:    os.Getenv("METRICS_PORT"),
		},
		Dashboard: Dashboard{
			RecentLimit:    recentLimit,
			WarmupInterval: warmupInterval,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return errors.New("PANEL_API_BASE_URL is required")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Port == "" {
		return errors.New("METRICS_PORT is required when METRICS_ENABLED is set")
	}
	if cfg.Dashboard.RecentLimit < 0 {
		return errors.New("DASHBOARD_RECENT_LIMIT must not be negative")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

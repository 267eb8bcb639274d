package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Currency   string           `yaml:"currency"`  // symbol prefixed to every amount
	DateHint   string           `yaml:"date_hint"` // shown in the date prompt, dates are never validated
	SessionLog SessionLogConfig `yaml:"session_log"`
}

// SessionLogConfig controls the session audit trail.
type SessionLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Default returns a Config with sensible defaults for a new session.
func Default() *Config {
	return &Config{
		Currency: "$",
		DateHint: "YYYY-MM-DD",
		SessionLog: SessionLogConfig{
			Enabled: false,
			Dir:     ".",
		},
	}
}

// Load reads a tally.yaml file from disk and applies environment
// overrides. A missing file is not an error: the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		fillDefaults(cfg)
	}

	applyEnv(cfg)
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.Currency == "" {
		cfg.Currency = def.Currency
	}
	if cfg.DateHint == "" {
		cfg.DateHint = def.DateHint
	}
	if cfg.SessionLog.Dir == "" {
		cfg.SessionLog.Dir = def.SessionLog.Dir
	}
}

// applyEnv layers TALLY_* environment variables over the file values.
func applyEnv(cfg *Config) {
	cfg.Currency = getEnv("TALLY_CURRENCY", cfg.Currency)
	cfg.DateHint = getEnv("TALLY_DATE_HINT", cfg.DateHint)
	cfg.SessionLog.Enabled = getEnvBool("TALLY_SESSION_LOG", cfg.SessionLog.Enabled)
	cfg.SessionLog.Dir = getEnv("TALLY_SESSION_LOG_DIR", cfg.SessionLog.Dir)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

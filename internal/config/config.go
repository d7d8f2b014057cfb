// Package config loads and saves guidepost configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Deployment environments. The environment picks which webhook URL receives
// submissions; it is resolved once at startup and injected, never read from
// ambient state at submit time.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds all guidepost configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Webhook WebhookConfig `toml:"webhook"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Environment string `toml:"environment"`
	Theme       string `toml:"theme"`
	DraftDB     string `toml:"draft_db,omitempty"`
}

// WebhookConfig holds the intake webhook endpoints and the identifying
// constants embedded in every submission payload.
type WebhookConfig struct {
	ProductionURL  string `toml:"production_url"`
	DevelopmentURL string `toml:"development_url"`
	BrokerageID    string `toml:"brokerage_id"`
	IntakeSecret   string `toml:"intake_secret,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Environment: EnvProduction,
			Theme:       "flexoki-dark",
		},
		Webhook: WebhookConfig{
			ProductionURL:  "https://hooks.guideflow.app/v1/intake/lead",
			DevelopmentURL: "https://hooks.dev.guideflow.app/v1/intake/lead",
			BrokerageID:    "harborline-realty",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "guidepost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "guidepost")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// WebhookURL resolves the submission endpoint for the configured
// environment. Anything other than "development" gets production.
func WebhookURL(cfg Config) string {
	if cfg.General.Environment == EnvDevelopment {
		return cfg.Webhook.DevelopmentURL
	}
	return cfg.Webhook.ProductionURL
}

// GetIntakeSecret returns the intake secret from env var or config, in that
// order.
func GetIntakeSecret(cfg Config) string {
	if s := os.Getenv("GUIDEPOST_INTAKE_SECRET"); s != "" {
		return s
	}
	return cfg.Webhook.IntakeSecret
}

// DraftDBPath returns the configured draft database path, or fallback if
// none is set.
func DraftDBPath(cfg Config, fallback string) string {
	if cfg.General.DraftDB != "" {
		return cfg.General.DraftDB
	}
	return fallback
}

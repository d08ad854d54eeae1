// Package config reads and writes the rebalance TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/money"
)

// EnvDB overrides the database path.
const EnvDB = "REBALANCE_DB"

// Config holds all rebalance configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Defaults   DefaultsConfig   `toml:"defaults"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath string `toml:"db_path,omitempty"`
	Locale string `toml:"locale"`
}

// DefaultsConfig holds the values a fresh database starts with.
type DefaultsConfig struct {
	SurvivalCost          int64 `toml:"survival_cost"`
	IncludeDebtInSurvival bool  `toml:"include_debt_in_survival"`
	SeedExampleDebt       bool  `toml:"seed_example_debt"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Locale: "en",
		},
		Defaults: DefaultsConfig{
			SurvivalCost:          25000,
			IncludeDebtInSurvival: true,
			SeedExampleDebt:       true,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rebalance")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rebalance")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
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
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DBPath resolves the database location: env var, then config, then the
// default inside the config directory.
func DBPath(cfg Config) string {
	if p := os.Getenv(EnvDB); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return filepath.Join(ConfigDir(), "rebalance.db")
}

// Settings converts the configured defaults into app settings.
func (c Config) Settings() model.Settings {
	return model.Settings{
		IncludeDebtInSurvival: c.Defaults.IncludeDebtInSurvival,
		SurvivalCost:          money.Amount(c.Defaults.SurvivalCost),
	}
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

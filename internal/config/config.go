// Package config loads pocketguard settings from a TOML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/theirongolddev/pocketguard/internal/model"
)

// Environment variables that override file values.
const (
	EnvMonthlyBudget = "POCKETGUARD_MONTHLY_BUDGET"
	EnvCurrency      = "POCKETGUARD_CURRENCY"
	EnvJournal       = "POCKETGUARD_JOURNAL"
	EnvLogFormat     = "POCKETGUARD_LOG_FORMAT"
	EnvLogLevel      = "POCKETGUARD_LOG_LEVEL"
)

// Config holds all pocketguard configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Budget     BudgetConfig     `toml:"budget"`
	Scheduler  SchedulerConfig  `toml:"scheduler"`
	Daemon     DaemonConfig     `toml:"daemon"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency    string `toml:"currency"`
	JournalPath string `toml:"journal_path,omitempty"`
	LogFormat   string `toml:"log_format,omitempty"`
	LogLevel    string `toml:"log_level,omitempty"`
}

// BudgetConfig holds the monthly budget a fresh journal starts with.
type BudgetConfig struct {
	Monthly int64 `toml:"monthly"`
}

// SchedulerConfig controls the day reset.
type SchedulerConfig struct {
	DayResetInterval string `toml:"day_reset_interval"`
}

// DaemonConfig holds HTTP service settings.
type DaemonConfig struct {
	Addr             string   `toml:"addr"`
	EventsBuffer     int      `toml:"events_buffer"`
	CORSAllowOrigins []string `toml:"cors_allow_origins,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:  "₹",
			LogFormat: "console",
			LogLevel:  "info",
		},
		Budget: BudgetConfig{
			Monthly: 5000,
		},
		Scheduler: SchedulerConfig{
			DayResetInterval: "24h",
		},
		Daemon: DaemonConfig{
			Addr:         "127.0.0.1:8788",
			EventsBuffer: 200,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pocketguard")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pocketguard")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the journal and daemon state.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "pocketguard")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "pocketguard")
}

// Load reads the config file, returning defaults if it doesn't exist, then applies
// environment overrides. A .env file in the working directory is loaded first.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := LoadFile(ConfigPath())
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads one TOML file over the defaults. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
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

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvMonthlyBudget); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMonthlyBudget, err)
		}
		cfg.Budget.Monthly = n
	}
	if v, ok := os.LookupEnv(EnvCurrency); ok {
		cfg.General.Currency = v
	}
	if v, ok := os.LookupEnv(EnvJournal); ok {
		cfg.General.JournalPath = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		cfg.General.LogFormat = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.General.LogLevel = v
	}
	return nil
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

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Journal returns the journal database path, defaulting into DataDir.
func (c Config) Journal() string {
	if c.General.JournalPath != "" {
		return c.General.JournalPath
	}
	return filepath.Join(DataDir(), "journal.db")
}

// MonthlyBudget returns the configured starting budget.
func (c Config) MonthlyBudget() model.Money {
	return model.Money(c.Budget.Monthly)
}

// DayResetInterval parses the scheduler interval.
func (c Config) DayResetInterval() (time.Duration, error) {
	if c.Scheduler.DayResetInterval == "" {
		return 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(c.Scheduler.DayResetInterval)
	if err != nil {
		return 0, fmt.Errorf("day_reset_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("day_reset_interval must be positive, got %s", d)
	}
	return d, nil
}

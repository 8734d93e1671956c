package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pocketguard/internal/model"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, model.Money(5000), cfg.MonthlyBudget())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[general]
currency = "$"

[budget]
monthly = 1200

[scheduler]
day_reset_interval = "1m"

[daemon]
cors_allow_origins = ["http://localhost:5173"]
`), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.General.Currency)
	assert.Equal(t, model.Money(1200), cfg.MonthlyBudget())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Daemon.CORSAllowOrigins)
	assert.Equal(t, "127.0.0.1:8788", cfg.Daemon.Addr)

	d, err := cfg.DayResetInterval()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, d)
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[budget\nmonthly = "), 0o600))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvMonthlyBudget, "9000")
	t.Setenv(EnvCurrency, "€")
	t.Setenv(EnvJournal, "/tmp/pg.db")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, model.Money(9000), cfg.MonthlyBudget())
	assert.Equal(t, "€", cfg.General.Currency)
	assert.Equal(t, "/tmp/pg.db", cfg.Journal())
	assert.Equal(t, "json", cfg.General.LogFormat)
	assert.Equal(t, "debug", cfg.General.LogLevel)
}

func TestEnvBadBudget(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvMonthlyBudget, "lots")

	_, err := Load()
	assert.ErrorContains(t, err, EnvMonthlyBudget)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	assert.False(t, Exists())

	cfg := DefaultConfig()
	cfg.Budget.Monthly = 7500
	cfg.Appearance.Theme = "catppuccin-mocha"
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	loaded, err := LoadFile(ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestJournalDefaultsToDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "pocketguard", "journal.db"), DefaultConfig().Journal())
}

func TestDayResetIntervalValidation(t *testing.T) {
	cfg := DefaultConfig()
	d, err := cfg.DayResetInterval()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	cfg.Scheduler.DayResetInterval = "soon"
	_, err = cfg.DayResetInterval()
	assert.Error(t, err)

	cfg.Scheduler.DayResetInterval = "-1h"
	_, err = cfg.DayResetInterval()
	assert.Error(t, err)
}

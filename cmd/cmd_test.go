package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pocketguard/internal/config"
	"github.com/theirongolddev/pocketguard/internal/engine"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/pipeline"
)

// run executes the root command with isolated config and data directories.
func run(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	flagJournal, flagNoJournal, flagQuiet, flagCurrency = "", false, false, ""
	flagCategory, flagMood = string(model.CategoryOther), string(model.MoodNeutral)
	flagClearAlerts = false
	flagExpenseLimit, flagDailyDays = 20, 14

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCommandsShareTheJournal(t *testing.T) {
	journal := filepath.Join(t.TempDir(), "journal.db")
	j := func(args ...string) []string { return append([]string{"--journal", journal, "-q"}, args...) }

	require.NoError(t, run(t, j("budget", "6000")...))
	require.NoError(t, run(t, j("spend", "200", "-c", "food", "-m", "stressed")...))
	require.NoError(t, run(t, j("emergency", "300")...))
	require.NoError(t, run(t, j("tip")...))
	require.NoError(t, run(t, j("status")...))
	require.NoError(t, run(t, j("expenses", "-n", "5")...))
	require.NoError(t, run(t, j("report")...))
	require.NoError(t, run(t, j("daily", "-d", "3")...))
	require.NoError(t, run(t, j("newday")...))
	require.NoError(t, run(t, j("alerts", "--clear")...))

	sess, err := pipeline.Open(pipeline.Options{
		JournalPath: journal,
		Engine:      engine.Options{MonthlyBudget: 5000},
	})
	require.NoError(t, err)
	defer sess.Close()

	assert.Equal(t, model.Money(6000), sess.Allocation().MonthlyBudget)
	assert.Equal(t, model.Money(500), sess.Ledger().TotalSpending)
	assert.Zero(t, sess.Ledger().TodaySpending)
	assert.Empty(t, sess.Alerts())
}

func TestSpendRejectsBadInput(t *testing.T) {
	assert.Error(t, run(t, "--no-journal", "spend", "10", "-c", "emergency"))
	assert.Error(t, run(t, "--no-journal", "spend", "10", "-m", "angry"))
	assert.ErrorIs(t, run(t, "--no-journal", "spend", "ten"), model.ErrInvalidAmount)
	assert.ErrorIs(t, run(t, "--no-journal", "budget", "0"), model.ErrInvalidAmount)
}

func TestCurrencyFlagOverridesConfig(t *testing.T) {
	require.NoError(t, run(t, "--no-journal", "--currency", "$", "config"))
	assert.Equal(t, "$", appCfg.General.Currency)
	assert.Empty(t, journalPath())
}

func TestDaemonConfigDefaults(t *testing.T) {
	appCfg = config.DefaultConfig()
	flagDaemonAddr, flagDaemonInterval, flagDaemonEventsBuffer = "", 0, 0

	cfg, err := daemonConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8788", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.DayResetInterval)
	assert.Equal(t, 200, cfg.EventsBuffer)

	flagDaemonAddr, flagDaemonInterval = "0.0.0.0:9000", time.Minute
	t.Cleanup(func() { flagDaemonAddr, flagDaemonInterval = "", 0 })

	cfg, err = daemonConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
	assert.Equal(t, time.Minute, cfg.DayResetInterval)
}

func TestApplySetup(t *testing.T) {
	cfg := config.DefaultConfig()
	applySetup(&cfg, setupValues{Budget: "8000", Currency: " $ ", DayReset: "12h", Theme: "tokyo-night"})

	assert.Equal(t, int64(8000), cfg.Budget.Monthly)
	assert.Equal(t, "$", cfg.General.Currency)
	assert.Equal(t, "12h", cfg.Scheduler.DayResetInterval)
	assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)

	applySetup(&cfg, setupValues{Budget: "x", Currency: "₹", DayReset: "24h", Theme: "nope"})
	assert.Equal(t, int64(8000), cfg.Budget.Monthly)
	assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)
}

func TestFilterDetachArg(t *testing.T) {
	assert.Equal(t, []string{"daemon", "--addr", "x"}, filterDetachArg([]string{"daemon", "--detach", "--addr", "x", "--detach=true"}))
}

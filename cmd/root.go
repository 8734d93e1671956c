// Package cmd implements the pocketguard CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/config"
	"github.com/theirongolddev/pocketguard/internal/engine"
	"github.com/theirongolddev/pocketguard/internal/logging"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagJournal   string
	flagNoJournal bool
	flagQuiet     bool
	flagCurrency  string
)

// appCfg is loaded once per invocation, before any command runs.
var appCfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "pocketguard",
	Short: "Student budget tracker with behavioral spending alerts",
	Long: "Track daily spending against a monthly budget. pocketguard keeps 10% aside as savings,\n" +
		"splits the rest into a daily limit and warns about emotional, rising or runaway spending.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagJournal, "journal", "j", "", "Journal database path (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoJournal, "no-journal", false, "Keep state in memory only")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency prefix for amounts (default from config)")
}

// setup loads configuration, applies flag overrides and configures logging.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagCurrency != "" {
		cfg.General.Currency = flagCurrency
	}
	if flagJournal != "" {
		cfg.General.JournalPath = flagJournal
	}
	appCfg = cfg

	return logging.Setup(os.Stderr, cfg.General.LogFormat, cfg.General.LogLevel)
}

// journalPath is the journal used by this invocation, or "" for memory only.
func journalPath() string {
	if flagNoJournal {
		return ""
	}
	return appCfg.Journal()
}

// openSession opens the journaled session shared by every command.
func openSession() (*pipeline.Session, error) {
	path := journalPath()
	sess, err := pipeline.Open(pipeline.Options{
		JournalPath: path,
		Engine: engine.Options{
			MonthlyBudget: appCfg.MonthlyBudget(),
			Currency:      appCfg.General.Currency,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	if !flagQuiet && sess.Replayed > 0 {
		fmt.Fprintf(os.Stderr, "  Loaded %s events from %s\n", cli.FormatNumber(int64(sess.Replayed)), path)
	}
	return sess, nil
}

// withSession runs fn against an open session and closes it afterwards.
func withSession(fn func(*pipeline.Session) error) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Warn().Err(err).Msg("closing journal")
		}
	}()
	return fn(sess)
}

// printAlerts prints alerts after a blank line, or nothing when there are none.
func printAlerts(alerts []model.Alert) {
	if len(alerts) == 0 {
		return
	}
	fmt.Println()
	fmt.Print(cli.RenderAlerts(alerts))
}

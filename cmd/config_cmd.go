package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:   %s\n", cfg.General.Currency)
	journal := journalPath()
	if journal == "" {
		journal = "disabled (--no-journal)"
	}
	fmt.Printf("    Journal:    %s\n", journal)
	fmt.Printf("    Log format: %s\n", cfg.General.LogFormat)
	fmt.Printf("    Log level:  %s\n", cfg.General.LogLevel)
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Monthly budget: %s\n", cli.FormatMoney(cfg.MonthlyBudget(), cfg.General.Currency))
	fmt.Println(cli.RenderMuted("    Used only when a new journal is created; afterwards `pocketguard budget` sets it."))
	fmt.Println()

	fmt.Println("  [Scheduler]")
	fmt.Printf("    Day reset interval: %s\n", cfg.Scheduler.DayResetInterval)
	fmt.Println()

	fmt.Println("  [Daemon]")
	fmt.Printf("    Address:       %s\n", cfg.Daemon.Addr)
	fmt.Printf("    Events buffer: %d\n", cfg.Daemon.EventsBuffer)
	if len(cfg.Daemon.CORSAllowOrigins) > 0 {
		fmt.Printf("    CORS origins:  %s\n", strings.Join(cfg.Daemon.CORSAllowOrigins, ", "))
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `pocketguard setup` to reconfigure.")
	return nil
}

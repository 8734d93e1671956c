package cmd

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/cli"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagClearAlerts bool

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List active alerts",
	Args:  cobra.NoArgs,
	RunE:  runAlerts,
}

func init() {
	alertsCmd.Flags().BoolVar(&flagClearAlerts, "clear", false, "Clear all alerts")
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *pipeline.Session) error {
		if flagClearAlerts {
			n := len(sess.Alerts())
			if err := sess.ClearAlerts(); err != nil {
				return err
			}
			fmt.Printf("\n  Cleared %d alerts\n\n", n)
			return nil
		}

		alerts := sess.Alerts()
		if len(alerts) == 0 {
			fmt.Println("\n  No alerts. Spend wisely!")
			fmt.Println()
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("ALERTS  %d active", len(alerts))))
		fmt.Println()
		fmt.Print(cli.RenderAlerts(alerts))
		fmt.Println()
		return nil
	})
}

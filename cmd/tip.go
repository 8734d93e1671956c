package cmd

import (
	"fmt"

	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/pipeline"

	"github.com/spf13/cobra"
)

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Get a micro-saving tip",
	Args:  cobra.NoArgs,
	RunE:  runTip,
}

func init() {
	rootCmd.AddCommand(tipCmd)
}

func runTip(_ *cobra.Command, _ []string) error {
	return withSession(func(sess *pipeline.Session) error {
		alert, err := sess.RequestMicroSavingTip()
		if err != nil {
			return err
		}
		printAlerts([]model.Alert{alert})
		fmt.Println()
		return nil
	})
}

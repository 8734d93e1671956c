package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/pocketguard/internal/config"
	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues is bound to the wizard's fields.
type setupValues struct {
	Budget   string
	Currency string
	DayReset string
	Theme    string
}

func newSetupForm(vals *setupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to pocketguard!").
				Description("10% of your monthly budget is kept as savings.\nThe rest becomes a daily limit over 30 days."),
			huh.NewInput().
				Title("Monthly budget").
				Description("Used when a new journal is created.").
				Value(&vals.Budget).
				Validate(func(s string) error {
					_, err := model.ParseAmount(s)
					return err
				}),
			huh.NewInput().
				Title("Currency prefix").
				Value(&vals.Currency).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("currency prefix cannot be empty")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Day reset interval").
				Description("How often today's spending resets, e.g. 24h.").
				Value(&vals.DayReset).
				Validate(func(s string) error {
					d, err := time.ParseDuration(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if d <= 0 {
						return errors.New("interval must be positive")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&vals.Theme),
		),
	).WithTheme(huh.ThemeCharm())
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file alone so environment overrides are not written back.
	cfg, err := config.LoadFile(config.ConfigPath())
	if err != nil {
		return err
	}

	vals := &setupValues{
		Budget:   strconv.FormatInt(cfg.Budget.Monthly, 10),
		Currency: cfg.General.Currency,
		DayReset: cfg.Scheduler.DayResetInterval,
		Theme:    cfg.Appearance.Theme,
	}

	if err := newSetupForm(vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return err
	}

	applySetup(&cfg, *vals)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `pocketguard setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// applySetup copies validated wizard answers into cfg.
func applySetup(cfg *config.Config, vals setupValues) {
	if amount, err := model.ParseAmount(vals.Budget); err == nil {
		cfg.Budget.Monthly = int64(amount)
	}
	cfg.General.Currency = strings.TrimSpace(vals.Currency)
	cfg.Scheduler.DayResetInterval = strings.TrimSpace(vals.DayReset)
	if _, ok := theme.Lookup(vals.Theme); ok {
		cfg.Appearance.Theme = vals.Theme
	}
}

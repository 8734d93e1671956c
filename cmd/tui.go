package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theirongolddev/pocketguard/internal/config"
	"github.com/theirongolddev/pocketguard/internal/logging"
	"github.com/theirongolddev/pocketguard/internal/tui"
	"github.com/theirongolddev/pocketguard/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	theme.SetActive(appCfg.Appearance.Theme)

	interval, err := appCfg.DayResetInterval()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to a file.
	logOut, closeLog := tuiLogOutput()
	defer closeLog()
	if err := logging.Setup(logOut, "json", appCfg.General.LogLevel); err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Warn().Err(err).Msg("closing journal")
		}
	}()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(sess, tui.Options{DayResetInterval: interval})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// tuiLogOutput opens the TUI log file, falling back to discarding logs.
func tuiLogOutput() (io.Writer, func()) {
	path := filepath.Join(config.DataDir(), "tui.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return io.Discard, func() {}
	}
	//nolint:gosec // log path is under the user's data directory
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}

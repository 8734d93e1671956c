// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at w. Format "json" writes JSON lines,
// anything else a human readable console format. An empty level means info.
func Setup(w io.Writer, format, level string) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("log level %q: %w", level, err)
		}
		lvl = parsed
	}
	zerolog.SetGlobalLevel(lvl)

	output := w
	if format != "json" {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
	return nil
}

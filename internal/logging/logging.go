// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger. format is "console" for human-readable output or
// "json" for one JSON object per line. Unknown levels fall back to info and are
// reported as an error.
func Setup(level, format string) error {
	return setup(os.Stdout, level, format)
}

func setup(out io.Writer, level, format string) error {
	var setupErr error

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
		if err != nil {
			setupErr = fmt.Errorf("unknown log level %q: %w", level, err)
		}
	}

	var output io.Writer
	switch format {
	case "json":
		output = out
	case "console", "":
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	default:
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		if setupErr == nil {
			setupErr = fmt.Errorf("unknown log format %q", format)
		}
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	return setupErr
}

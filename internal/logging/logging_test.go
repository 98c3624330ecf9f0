package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

func TestSetup(t *testing.T) {
	t.Run("json output at the given level", func(t *testing.T) {
		restoreGlobals(t)
		var buf bytes.Buffer

		if err := setup(&buf, "warn", "json"); err != nil {
			t.Fatalf("setup() returned unexpected error: %v", err)
		}
		log.Info().Msg("hidden")
		log.Warn().Str("book", "Casa A").Msg("shown")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Fatalf("Expected 1 log line, got %d: %q", len(lines), buf.String())
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
			t.Fatalf("Expected JSON log line: %v", err)
		}
		if entry["message"] != "shown" || entry["book"] != "Casa A" {
			t.Errorf("Unexpected entry: %v", entry)
		}
		if _, ok := entry["time"]; !ok {
			t.Error("Expected a timestamp field")
		}
	})

	t.Run("console output", func(t *testing.T) {
		restoreGlobals(t)
		var buf bytes.Buffer

		if err := setup(&buf, "debug", "console"); err != nil {
			t.Fatalf("setup() returned unexpected error: %v", err)
		}
		log.Debug().Msg("hello")

		if !strings.Contains(buf.String(), "hello") || strings.HasPrefix(buf.String(), "{") {
			t.Errorf("Expected console formatted line, got %q", buf.String())
		}
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		restoreGlobals(t)
		var buf bytes.Buffer

		if err := setup(&buf, "loud", "json"); err == nil {
			t.Error("Expected error for unknown level")
		}
		if zerolog.GlobalLevel() != zerolog.InfoLevel {
			t.Errorf("Expected info level, got %s", zerolog.GlobalLevel())
		}
	})

	t.Run("unknown format is reported", func(t *testing.T) {
		restoreGlobals(t)
		if err := setup(&bytes.Buffer{}, "info", "xml"); err == nil {
			t.Error("Expected error for unknown format")
		}
	})
}

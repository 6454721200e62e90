// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path diagnostics
//
// Purpose:
//   - Reports configuration errors, run milestones and per-strategy details
//     on stderr, leaving stdout to the benchmark's own output.
//
// Notes:
//   - Backed by a zerolog console logger; level from COWBENCH_LOG_LEVEL.
//   - The default level is info, so Trace lines stay silent unless asked for.
//
// ⚠️ Never invoke inside a measured region.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cowbench/constants"
)

var logger = newLogger(os.Stderr, levelFromEnv(os.Getenv(constants.EnvLogLevel)))

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    w != os.Stderr,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// SetOutput redirects diagnostics to w at the given level.
func SetOutput(w io.Writer, lvl zerolog.Level) {
	logger = newLogger(w, lvl)
}

// DropError logs err under prefix.  A nil err logs prefix alone as a warning
// tag.
func DropError(prefix string, err error) {
	if err != nil {
		logger.Error().Err(err).Msg(prefix)
		return
	}
	logger.Warn().Msg(prefix)
}

// DropMessage logs a milestone.
func DropMessage(prefix, message string) {
	logger.Info().Str("tag", prefix).Msg(message)
}

// Trace logs detail that is only interesting when tuning a run.
func Trace(prefix, message string) {
	logger.Debug().Str("tag", prefix).Msg(message)
}

// levelFromEnv maps a COWBENCH_LOG_LEVEL value to a level; unknown or empty
// values fall back to info.
func levelFromEnv(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

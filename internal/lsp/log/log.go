// Package log provides centralized logging for the LSP server.
//
// Output is structured JSON produced by zerolog. Logging is disabled until
// SetOutput is called with a non-nil writer.
package log

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.Mutex
	out     io.Writer
	level   = zerolog.DebugLevel
	logger  = zerolog.Nop()
	enabled bool
)

// SetOutput sets the log output. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	rebuild()
}

// SetLevel sets the minimum level that is written ("debug", "info", "warn", ...).
func SetLevel(name string) error {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	rebuild()
	return nil
}

// rebuild must be called with mu held.
func rebuild() {
	if out == nil {
		logger = zerolog.Nop()
		enabled = false
		return
	}
	logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	enabled = true
}

// Debug writes a debug log message if logging is enabled.
func Debug(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Debug().Msgf(format, args...)
}

// Debugf is an alias for Debug.
func Debugf(format string, args ...any) {
	Debug(format, args...)
}

// Server writes a server-scoped log message.
func Server(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Info().Str("component", "server").Msgf(format, args...)
}

// Session writes a session-scoped log message for document lifecycle events.
func Session(uri string, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Info().Str("component", "session").Str("uri", uri).Msgf(format, args...)
}

// Provider writes a provider-scoped debug message.
func Provider(name string, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Debug().Str("component", "provider").Str("provider", name).Msgf(format, args...)
}

// Warn writes a warning with an attached error.
func Warn(err error, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Warn().Err(err).Msgf(format, args...)
}

// Enabled returns true if logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

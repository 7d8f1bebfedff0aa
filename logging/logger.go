// Package logging provides the structured logger shared by the subscriber
// components.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ComponentLogger wraps a zerolog logger carrying component identity fields.
type ComponentLogger struct {
	logger    zerolog.Logger
	component string
	version   string
}

// NewComponentLogger creates a console logger tagged with the component name
// and version. Verbosity follows the -v flag count: 0 warn, 1 info, 2+ debug.
func NewComponentLogger(component, version string, verbosity int) *ComponentLogger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Str("component", component).
		Str("version", version).
		Logger()

	switch {
	case verbosity <= 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case verbosity == 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return &ComponentLogger{
		logger:    logger,
		component: component,
		version:   version,
	}
}

// Debug returns a debug level event.
func (cl *ComponentLogger) Debug() *zerolog.Event {
	return cl.logger.Debug()
}

// Info returns an info level event.
func (cl *ComponentLogger) Info() *zerolog.Event {
	return cl.logger.Info()
}

// Warn returns a warn level event.
func (cl *ComponentLogger) Warn() *zerolog.Event {
	return cl.logger.Warn()
}

// Error returns an error level event.
func (cl *ComponentLogger) Error() *zerolog.Event {
	return cl.logger.Error()
}

// Fatal returns a fatal level event.
func (cl *ComponentLogger) Fatal() *zerolog.Event {
	return cl.logger.Fatal()
}

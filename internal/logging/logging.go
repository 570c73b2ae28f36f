// Package logging configures the global zerolog logger for pathseg.
//
// Logs go to stderr (and optionally a file). Stdout is reserved for the
// rendered path since it is usually captured by a shell prompt.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the log file name under the XDG state directory.
const LogFileName = "pathseg.log"

// AutoLogFile is the --log value that selects the XDG state location.
const AutoLogFile = "auto"

// SetupLogger configures the global logger based on verbosity level.
// Console output goes to stderr; if logFile is non-empty, entries are also
// appended there.
func SetupLogger(verbosity int, stderr io.Writer, logFile string) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.Kitchen,
	}

	writers := []io.Writer{consoleWriter}

	var fileErr error
	if logFile != "" {
		f, err := openLogFile(logFile)
		if err == nil {
			writers = append(writers, f)
		}
		fileErr = err
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to open log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a logger tagged with the given component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// ResolveLogFile maps the --log flag value to a file path. AutoLogFile picks
// $XDG_STATE_HOME/pathseg/pathseg.log; anything else is used verbatim.
func ResolveLogFile(value string) (string, error) {
	if value != AutoLogFile {
		return value, nil
	}
	path, err := xdg.StateFile(filepath.Join("pathseg", LogFileName))
	if err != nil {
		return "", fmt.Errorf("failed to resolve log file location: %w", err)
	}
	return path, nil
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Package logging holds the process wide zerolog logger
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jrick/logrotate/rotator"
	"github.com/rs/zerolog"
)

const (
	logFilename    = "zclwallet.log"
	maxLogFileKB   = 10 * 1024
	maxRolledFiles = 3
)

// L is the global logger. Until AttachFile is called it only writes to stderr.
var L = zerolog.New(consoleWriter()).With().Timestamp().Caller().Logger()

var logRotator *rotator.Rotator

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
}

// SetLogLevel sets the global minimum level
func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// AttachFile adds a rotating log file below dataDir/logs next to the console output.
func AttachFile(dataDir string) error {
	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}

	r, err := rotator.New(filepath.Join(logDir, logFilename), maxLogFileKB, false, maxRolledFiles)
	if err != nil {
		return err
	}
	logRotator = r

	L = zerolog.New(zerolog.MultiLevelWriter(consoleWriter(), r)).
		With().Timestamp().Caller().Logger()
	return nil
}

// Close flushes and closes the log file if one is attached
func Close() {
	if logRotator != nil {
		logRotator.Close()
		logRotator = nil
	}
}

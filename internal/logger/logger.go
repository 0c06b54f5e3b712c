// Package logger provides the process-wide structured logger.
//
// Logs are written as text to stderr so that stdout carries only the
// detection report. The level is taken from SHAPEID_LOG_LEVEL (debug, info,
// warn, error); anything else selects info.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable that sets the log level.
const LevelEnv = "SHAPEID_LOG_LEVEL"

// Logger is the process-wide logger, writing to stderr at the level named by
// SHAPEID_LOG_LEVEL.
var Logger *logrus.Logger

func init() {
	Logger = New(os.Stderr, os.Getenv(LevelEnv))
}

// New creates a text logger writing to w at the named level.
func New(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(ParseLevel(level))
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	return l
}

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogLevelEnvVar names the environment variable holding the log level
// ("debug", "info", "warn" or "error").
const LogLevelEnvVar = "LOG_LEVEL"

// NewLogger returns a timestamped logger writing to w at the level named by
// LOG_LEVEL, defaulting to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(GetEnv(LogLevelEnvVar, "info")); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

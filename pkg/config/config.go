// Package config loads optional daemon defaults from the environment,
// sourcing a .env file first if one is present.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/boardmirror/boardmirror/pkg/logging"
)

// Environment variable names consulted for daemon defaults.
const (
	envPort         = "BOARDMIRROR_DAEMON_PORT"
	envPollInterval = "BOARDMIRROR_POLL_INTERVAL"
	envLogLevel     = "BOARDMIRROR_LOG_LEVEL"
)

// DefaultPollInterval is the fallback poll interval when none is
// configured.
const DefaultPollInterval = 10 * time.Millisecond

// Daemon holds daemon defaults resolved from a .env file and/or the
// process environment.
type Daemon struct {
	// Port is the default listening port; 0 means "OS-assigned".
	Port uint16
	// PollInterval is the cooperative-scheduling poll interval.
	PollInterval time.Duration
	// LogLevel is the default log level name.
	LogLevel string
}

// Load reads a .env file from the current directory if one exists (errors
// doing so are swallowed, exactly as for any other optional configuration
// source) and then resolves daemon defaults from the environment.
func Load(logger *logging.Logger) Daemon {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Debugf("unable to load .env file: %v", err)
	}

	daemon := Daemon{
		PollInterval: DefaultPollInterval,
		LogLevel:     "info",
	}

	if v := os.Getenv(envPort); v != "" {
		if port, err := strconv.ParseUint(v, 10, 16); err == nil {
			daemon.Port = uint16(port)
		} else {
			logger.Warnf("invalid %s value %q: %v", envPort, v, err)
		}
	}

	if v := os.Getenv(envPollInterval); v != "" {
		if interval, err := time.ParseDuration(v); err == nil {
			daemon.PollInterval = interval
		} else {
			logger.Warnf("invalid %s value %q: %v", envPollInterval, v, err)
		}
	}

	if v := os.Getenv(envLogLevel); v != "" {
		daemon.LogLevel = v
	}

	return daemon
}

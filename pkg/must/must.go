// Package must provides small helpers for defer-site cleanup calls whose
// errors aren't actionable but are still worth a log line.
package must

import (
	"os"

	"github.com/boardmirror/boardmirror/pkg/logging"
)

// Close closes c, logging (rather than returning) any error.
func Close(c interface{ Close() error }, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("unable to close: %v", err)
	}
}

// OSRemove removes the named file, logging (rather than returning) any
// error beyond the file simply not existing.
func OSRemove(name string, logger *logging.Logger) {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		logger.Warnf("unable to remove %q: %v", name, err)
	}
}

// Succeed logs a failure of a best-effort task, rather than propagating it.
func Succeed(err error, task string, logger *logging.Logger) {
	if err != nil {
		logger.Warnf("unable to %s: %v", task, err)
	}
}

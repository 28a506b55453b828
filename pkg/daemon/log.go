package daemon

import (
	"fmt"
	"io"
	"os"
)

// OpenLog opens the daemon log file for appending, creating it if
// necessary. The daemon writes its structured log output here, since it
// normally runs detached from a terminal; the run command also copies that
// output to stderr.
func OpenLog() (io.WriteCloser, error) {
	path, err := LogPath()
	if err != nil {
		return nil, fmt.Errorf("unable to compute daemon log path: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("unable to open daemon log file: %w", err)
	}

	return file, nil
}

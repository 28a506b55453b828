package daemon

import (
	"path/filepath"

	"github.com/boardmirror/boardmirror/pkg/filesystem"
)

const (
	// lockName is the name of the daemon lock file, guaranteeing at most
	// one daemon instance runs at a time.
	lockName = "daemon.lock"
	// logName is the name of the daemon's log file.
	logName = "daemon.log"
)

// subpath computes a subpath of the daemon subdirectory, creating the
// daemon subdirectory (and the application directory above it) in the
// process.
func subpath(name string) (string, error) {
	root, err := filesystem.AppDirectory(true, filesystem.DaemonDirectoryName)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

// LockPath computes the path to the daemon lock file.
func LockPath() (string, error) {
	return subpath(lockName)
}

// LogPath computes the path to the daemon log file.
func LogPath() (string, error) {
	return subpath(logName)
}

// PortRegistryDirectory computes the path to the port registry directory,
// creating it if necessary.
func PortRegistryDirectory() (string, error) {
	return filesystem.AppDirectory(true, filesystem.DaemonDirectoryName, filesystem.PortRegistryDirectoryName)
}

// WorkspacesDirectory computes the path to the workspace store directory,
// creating it if necessary.
func WorkspacesDirectory() (string, error) {
	return filesystem.AppDirectory(true, filesystem.WorkspacesDirectoryName)
}

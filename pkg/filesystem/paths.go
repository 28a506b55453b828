package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// appDirectoryName is the name of this module's subdirectory within the
// platform configuration directory (as returned by os.UserConfigDir).
const appDirectoryName = "boardmirror"

const (
	// WorkspacesDirectoryName is the name of the subdirectory, within the
	// application directory, that holds persisted workspace files.
	WorkspacesDirectoryName = "workspaces"
	// DaemonDirectoryName is the name of the subdirectory, within the
	// application directory, that holds daemon lock, log, and port-registry
	// files.
	DaemonDirectoryName = "daemon"
	// PortRegistryDirectoryName is the name of the subdirectory, within the
	// daemon directory, whose filenames enumerate live daemon ports.
	PortRegistryDirectoryName = "port"
)

// AppDirectory computes (and optionally creates) a subpath of this module's
// application directory, rooted at the platform configuration directory
// rather than a fixed dotfile in the home directory.
func AppDirectory(create bool, pathComponents ...string) (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine configuration directory: %w", err)
	}
	result := filepath.Join(root, appDirectoryName, filepath.Join(pathComponents...))
	if create {
		if err := os.MkdirAll(result, 0700); err != nil {
			return "", fmt.Errorf("unable to create subpath: %w", err)
		}
	}
	return result, nil
}

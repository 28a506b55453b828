// Package workspace implements the workspace subcommand group: save, load,
// list, view, current, delete, and rename.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boardmirror/boardmirror/pkg/daemon"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/workspace"
)

// openStore opens the on-disk workspace store shared by all subcommands.
func openStore() (*workspace.Store, error) {
	directory, err := daemon.WorkspacesDirectory()
	if err != nil {
		return nil, fmt.Errorf("unable to compute workspace directory: %w", err)
	}
	return workspace.NewStore(directory, logging.RootLogger)
}

// relativize renders an absolute path relative to the CLI process's current
// working directory, matching the daemon's own display convention for the
// identity triples a workspace stores on disk.
func relativize(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	if rel == "" {
		return "."
	}
	return rel
}

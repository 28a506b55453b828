package board

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CandidateRoots enumerates mounted volumes under /Volumes, the
// conventional macOS mount point for removable mass storage.
func CandidateRoots() ([]string, error) {
	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		return nil, fmt.Errorf("unable to list volumes: %w", err)
	}

	var roots []string
	for _, entry := range entries {
		root := filepath.Join("/Volumes", entry.Name())

		var stat unix.Statfs_t
		if err := unix.Statfs(root, &stat); err != nil {
			continue
		}

		roots = append(roots, root)
	}
	return roots, nil
}

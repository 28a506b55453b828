// Package board implements the board-presence probe used by the CLI to
// default a monitor's write directory: it enumerates mounted volumes and
// picks the first whose root contains a marker file.
package board

import (
	"errors"
	"os"
	"path/filepath"
)

// MarkerFileName is the regular file whose presence at a volume's root
// identifies it as a connected board's mass-storage mount. CircuitPython
// boards write this file to their CIRCUITPY volume on boot.
const MarkerFileName = "boot_out.txt"

// ErrNotFound indicates that no mounted volume carries the marker file.
var ErrNotFound = errors.New("no connected board found")

// Find returns the root of the first candidate volume (as produced by
// CandidateRoots) that contains MarkerFileName as a regular file.
func Find() (string, error) {
	roots, err := CandidateRoots()
	if err != nil {
		return "", err
	}
	for _, root := range roots {
		info, err := os.Stat(filepath.Join(root, MarkerFileName))
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			return root, nil
		}
	}
	return "", ErrNotFound
}

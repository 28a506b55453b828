package board

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// CandidateRoots enumerates mounted filesystem roots by reading
// /proc/mounts, then filters out entries that no longer resolve with
// unix.Statfs (stale mounts, permission-denied automounts).
func CandidateRoots() ([]string, error) {
	file, err := os.Open("/proc/mounts")
	if err != nil {
		return nil, fmt.Errorf("unable to read mount table: %w", err)
	}
	defer file.Close()

	var roots []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		mountPoint := fields[1]

		var stat unix.Statfs_t
		if err := unix.Statfs(mountPoint, &stat); err != nil {
			continue
		}

		roots = append(roots, mountPoint)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to scan mount table: %w", err)
	}

	return roots, nil
}

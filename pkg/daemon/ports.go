package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/must"
)

// RegisterPort records the given port in the port registry directory by
// creating a zero-byte file named after it. The filename is the datum; the
// file's content is never read.
func RegisterPort(port uint16) error {
	directory, err := PortRegistryDirectory()
	if err != nil {
		return fmt.Errorf("unable to compute port registry directory: %w", err)
	}

	path := filepath.Join(directory, strconv.Itoa(int(port)))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to create port registry entry: %w", err)
	}
	return file.Close()
}

// UnregisterPort removes the port registry entry for the given port. It is
// not an error for the entry to already be gone.
func UnregisterPort(port uint16) error {
	directory, err := PortRegistryDirectory()
	if err != nil {
		return fmt.Errorf("unable to compute port registry directory: %w", err)
	}

	path := filepath.Join(directory, strconv.Itoa(int(port)))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("unable to remove port registry entry: %w", err)
	}
	return nil
}

// CandidatePorts lists the ports currently recorded in the registry
// directory, in no particular order. Entries whose name doesn't parse as a
// port number are skipped rather than treated as an error, since the
// registry directory is a lazily-swept filename index, not validated input.
func CandidatePorts() ([]uint16, error) {
	directory, err := PortRegistryDirectory()
	if err != nil {
		return nil, fmt.Errorf("unable to compute port registry directory: %w", err)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("unable to list port registry directory: %w", err)
	}

	var ports []uint16
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		value, err := strconv.ParseUint(entry.Name(), 10, 16)
		if err != nil {
			continue
		}
		ports = append(ports, uint16(value))
	}
	return ports, nil
}

// RemoveStalePort deletes a port registry entry that a client has determined
// no longer corresponds to a live daemon.
func RemoveStalePort(port uint16, logger *logging.Logger) {
	if err := UnregisterPort(port); err != nil {
		must.Succeed(err, "remove stale port registry entry", logger)
	}
}

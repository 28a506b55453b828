// Package locking provides simple, cross-process exclusive file locking,
// used to ensure that at most one boardmirror daemon instance runs at a
// time.
package locking

import (
	"fmt"
	"os"
)

// Locker provides file locking facilities. It wraps an open file descriptor
// on which OS-level advisory locks are taken.
type Locker struct {
	file *os.File
}

// NewLocker creates a locker backed by the file at the specified path,
// creating the file (but not locking it) if necessary.
func NewLocker(path string, permissions os.FileMode) (*Locker, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, permissions)
	if err != nil {
		return nil, fmt.Errorf("unable to open lock file: %w", err)
	}
	return &Locker{file: file}, nil
}

// Close closes the locker's underlying file. Callers should call Unlock
// first; on POSIX systems closing the file also drops the process's lock.
func (l *Locker) Close() error {
	return l.file.Close()
}

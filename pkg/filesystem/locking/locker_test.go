package locking

import (
	"path/filepath"
	"testing"
)

func TestLockerFailOnDirectory(t *testing.T) {
	if _, err := NewLocker(t.TempDir(), 0600); err == nil {
		t.Fatal("creating a locker on a directory path succeeded")
	}
}

func TestLockerCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")

	locker, err := NewLocker(path, 0600)
	if err != nil {
		t.Fatal("unable to create locker:", err)
	}

	if err := locker.Lock(true); err != nil {
		t.Fatal("unable to acquire lock:", err)
	}
	if err := locker.Unlock(); err != nil {
		t.Fatal("unable to release lock:", err)
	}
	if err := locker.Close(); err != nil {
		t.Fatal("unable to close locker:", err)
	}
}

// Note: a lock held by one Locker and contended by another in the *same*
// process is not exercised here, since POSIX advisory locks are associated
// with the (process, inode) pair rather than the individual file
// descriptor, so two Lockers in one process never actually conflict.
// Cross-process contention would require a second test binary, which
// isn't set up here.

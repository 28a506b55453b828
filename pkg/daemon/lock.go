package daemon

import (
	"fmt"

	"github.com/boardmirror/boardmirror/pkg/filesystem/locking"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/must"
)

// Lock is the global daemon lock, held by a single daemon instance at a
// time so that only one daemon ever owns the port registry and workspace
// store.
type Lock struct {
	locker *locking.Locker
	logger *logging.Logger
}

// AcquireLock attempts to acquire the global daemon lock without blocking.
func AcquireLock(logger *logging.Logger) (*Lock, error) {
	path, err := LockPath()
	if err != nil {
		return nil, fmt.Errorf("unable to compute daemon lock path: %w", err)
	}

	locker, err := locking.NewLocker(path, 0600)
	if err != nil {
		return nil, fmt.Errorf("unable to create daemon file locker: %w", err)
	}
	if err := locker.Lock(false); err != nil {
		must.Close(locker, logger)
		return nil, fmt.Errorf("unable to acquire daemon lock (is another daemon running?): %w", err)
	}

	return &Lock{locker: locker, logger: logger}, nil
}

// Release releases the daemon lock.
func (l *Lock) Release() error {
	if err := l.locker.Unlock(); err != nil {
		must.Close(l.locker, l.logger)
		return fmt.Errorf("unable to release daemon lock: %w", err)
	}
	if err := l.locker.Close(); err != nil {
		return fmt.Errorf("unable to close daemon locker: %w", err)
	}
	return nil
}

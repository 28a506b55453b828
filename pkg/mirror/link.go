// Package mirror implements the reconciliation engine: the FileLink and
// FileMonitor data model and the operations that keep destination files in
// sync with their sources.
package mirror

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/boardmirror/boardmirror/pkg/filesystem"
)

// Sentinel errors returned by FileLink operations.
var (
	// ErrInvalidSource indicates that a proposed source path is not an
	// existing, absolute, non-symlink regular file.
	ErrInvalidSource = errors.New("invalid source")
	// ErrInvalidDestination indicates that a proposed destination path is
	// not absolute, or is itself a symbolic link.
	ErrInvalidDestination = errors.New("invalid destination")
	// ErrDestinationSetup indicates that an ancestor of a destination path
	// could not be created because it exists and is not a directory.
	ErrDestinationSetup = errors.New("unable to set up destination path")
	// ErrCopyFailed indicates that copying a source to its destination
	// failed, including the race where a previously-regular source file
	// vanished or changed kind between glob expansion and the copy.
	ErrCopyFailed = errors.New("copy failed")
)

// FileLink is an ordered pair (Source, Destination): one regular file
// mirrored from Source to Destination. Equality and hashing (via Key) are
// over the pair only.
type FileLink struct {
	// Source is the absolute, non-symlink path to the source regular file.
	Source string
	// Destination is the absolute, non-symlink path to the mirrored file.
	// It need not exist yet.
	Destination string
}

// NewFileLink constructs a FileLink, validating that source is an existing,
// absolute, non-symlink regular file and that destination is an absolute,
// non-symlink path.
func NewFileLink(source, destination string) (*FileLink, error) {
	if !filepath.IsAbs(source) {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidSource, source)
	}
	if symlink, err := filesystem.IsSymbolicLink(source); err != nil {
		return nil, fmt.Errorf("%w: unable to stat %q: %v", ErrInvalidSource, source, err)
	} else if symlink {
		return nil, fmt.Errorf("%w: %q is a symbolic link", ErrInvalidSource, source)
	}
	if regular, err := filesystem.IsRegularFile(source); err != nil {
		return nil, fmt.Errorf("%w: unable to stat %q: %v", ErrInvalidSource, source, err)
	} else if !regular {
		return nil, fmt.Errorf("%w: %q is not a regular file", ErrInvalidSource, source)
	}

	if !filepath.IsAbs(destination) {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidDestination, destination)
	}
	if symlink, err := filesystem.IsSymbolicLink(destination); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: unable to stat %q: %v", ErrInvalidDestination, destination, err)
	} else if symlink {
		return nil, fmt.Errorf("%w: %q is a symbolic link", ErrInvalidDestination, destination)
	}

	return &FileLink{Source: source, Destination: destination}, nil
}

// Key returns the value used for equality and as a map key: the
// (source, destination) pair itself.
func (l *FileLink) Key() FileLink {
	return FileLink{Source: l.Source, Destination: l.Destination}
}

// EnsureWritePath creates every missing ancestor directory of the
// destination. It fails if any existing ancestor is not itself a directory.
func (l *FileLink) EnsureWritePath() error {
	if _, err := os.Stat(l.Destination); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: unable to stat destination: %v", ErrDestinationSetup, err)
	}

	dir := filepath.Dir(l.Destination)
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %q exists and is not a directory", ErrDestinationSetup, dir)
		}
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: unable to stat %q: %v", ErrDestinationSetup, dir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: unable to create %q: %v", ErrDestinationSetup, dir, err)
	}
	return nil
}

// IsOutdated reports whether the destination is missing or older (at
// full, sub-second precision) than the source.
func (l *FileLink) IsOutdated() (bool, error) {
	if _, err := os.Stat(l.Destination); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("unable to stat destination: %w", err)
	}

	sourceTime, err := filesystem.ModificationTime(l.Source)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	destinationTime, err := filesystem.ModificationTime(l.Destination)
	if err != nil {
		return false, fmt.Errorf("unable to read destination modification time: %w", err)
	}

	return sourceTime.After(destinationTime), nil
}

// Update performs a byte-for-byte copy from source to destination and then
// stamps the destination's modification time to match the source's, as
// observed at copy time. The stamping is essential: it's what makes
// IsOutdated stable across repeated reconciliations.
func (l *FileLink) Update() (int64, error) {
	source, err := os.Open(l.Source)
	if err != nil {
		return 0, fmt.Errorf("%w: unable to open source: %v", ErrCopyFailed, err)
	}
	defer source.Close()

	destination, err := os.OpenFile(l.Destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("%w: unable to open destination: %v", ErrCopyFailed, err)
	}

	copied, copyErr := io.Copy(destination, source)
	closeErr := destination.Close()
	if copyErr != nil {
		return copied, fmt.Errorf("%w: unable to copy: %v", ErrCopyFailed, copyErr)
	}
	if closeErr != nil {
		return copied, fmt.Errorf("%w: unable to close destination: %v", ErrCopyFailed, closeErr)
	}

	sourceTime, err := filesystem.ModificationTime(l.Source)
	if err != nil {
		return copied, fmt.Errorf("%w: unable to read source modification time after copy: %v", ErrCopyFailed, err)
	}
	if err := filesystem.SetModificationTime(l.Destination, sourceTime); err != nil {
		return copied, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	return copied, nil
}

// Delete removes the destination file. Unlike most of this package's
// operations, the absence of the destination is treated as an error here;
// callers that want absence tolerated (the common case during reconcile)
// should check os.IsNotExist themselves.
func (l *FileLink) Delete() error {
	return os.Remove(l.Destination)
}

package mirror

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/boardmirror/boardmirror/pkg/filesystem"
	"github.com/boardmirror/boardmirror/pkg/logging"
)

// ErrPartialGlobMatch indicates that a monitor's read pattern is malformed
// and could not be expanded against its base directory.
var ErrPartialGlobMatch = errors.New("malformed glob pattern")

// ErrFileIOError indicates that reconciliation failed to delete a link
// whose source has disappeared from the glob-match set. Per the monitor's
// invariants, its link set is left unchanged when this occurs (no partial
// swap).
var ErrFileIOError = errors.New("reconciliation I/O error")

// Monitor is one declarative file-monitor rule: a glob Pattern expanded
// against Base, mirrored into Write, together with the link set derived
// from the last reconciliation. Equality and the identity Key are over
// (Pattern, Base, Write) only; Links is cache-like derived state.
type Monitor struct {
	Pattern string
	Base    string
	Write   string
	Links   map[FileLink]*FileLink
}

// Identity is the (Pattern, Base, Write) identity triple used for equality,
// hashing, and workspace persistence (which stores identity only, never
// Links).
type Identity struct {
	Pattern string `json:"pattern"`
	Base    string `json:"base"`
	Write   string `json:"write"`
}

// NewMonitor constructs a Monitor with an empty link set.
func NewMonitor(pattern, base, write string) *Monitor {
	return &Monitor{
		Pattern: pattern,
		Base:    base,
		Write:   write,
		Links:   make(map[FileLink]*FileLink),
	}
}

// FromIdentity constructs a Monitor from a persisted identity triple, with
// an empty link set to be re-derived on first reconciliation.
func FromIdentity(id Identity) *Monitor {
	return NewMonitor(id.Pattern, id.Base, id.Write)
}

// Identity returns the monitor's identity triple.
func (m *Monitor) Identity() Identity {
	return Identity{Pattern: m.Pattern, Base: m.Base, Write: m.Write}
}

// Equal reports whether two monitors share the same identity.
func (m *Monitor) Equal(other *Monitor) bool {
	return m.Identity() == other.Identity()
}

// CalculateCurrent expands Base/Pattern via glob, keeps only regular files,
// and returns the set of FileLinks those matches imply: for each match m,
// FileLink(absolute(m), absolute(Write ⊕ relpath(m, Base))).
func (m *Monitor) CalculateCurrent() (map[FileLink]*FileLink, error) {
	matches, err := doublestar.Glob(os.DirFS(m.Base), m.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPartialGlobMatch, err)
	}

	current := make(map[FileLink]*FileLink, len(matches))
	for _, match := range matches {
		sourcePath := filepath.Join(m.Base, match)

		regular, err := filesystem.IsRegularFile(sourcePath)
		if err != nil || !regular {
			continue
		}

		relPath := filesystem.NormalizeRelativePath(match)
		destinationPath := filepath.Join(m.Write, relPath)

		link, err := NewFileLink(sourcePath, destinationPath)
		if err != nil {
			// The glob match raced with a concurrent modification (e.g. the
			// file was replaced by a symlink between Glob and our checks
			// above); skip it rather than fail the whole reconcile pass.
			continue
		}

		current[link.Key()] = link
	}

	return current, nil
}

// Reconcile is the central operation:
//
//  1. Compute the current glob-match set.
//  2. Delete links present last time but absent now.
//  3. Update any current link that's outdated.
//  4. Replace the monitor's link set with the current one.
//
// Per-link update failures in step 3 are logged and the link is skipped
// rather than propagated, degrading individual-link races to "skip this
// link this pass" rather than failing the whole reconciliation.
func (m *Monitor) Reconcile(logger *logging.Logger) error {
	current, err := m.CalculateCurrent()
	if err != nil {
		return err
	}

	for key, link := range m.Links {
		if _, stillPresent := current[key]; stillPresent {
			continue
		}
		if err := link.Delete(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%w: unable to delete %q: %v", ErrFileIOError, link.Destination, err)
		}
	}

	for _, link := range current {
		outdated, err := link.IsOutdated()
		if err != nil {
			logger.Warnf("skipping %q: unable to determine staleness: %v", link.Source, err)
			continue
		}
		if !outdated {
			continue
		}
		if err := link.EnsureWritePath(); err != nil {
			logger.Warnf("skipping %q: %v", link.Source, err)
			continue
		}
		if _, err := link.Update(); err != nil {
			logger.Warnf("skipping %q: %v", link.Source, err)
			continue
		}
	}

	m.Links = current
	return nil
}

// WriteDirectoryExists reports whether the monitor's write directory is
// still present on disk. The daemon uses this to detect removable media
// (e.g. a microcontroller) that has been unplugged.
func (m *Monitor) WriteDirectoryExists() bool {
	info, err := os.Stat(m.Write)
	return err == nil && info.IsDir()
}

// Record is a display row for a monitor: its pattern, base, and write
// directory, optionally relativized to the current working directory.
type Record struct {
	Pattern string `json:"pattern"`
	Base    string `json:"base"`
	Write   string `json:"write"`
	Links   int    `json:"links"`
}

// ToRecord produces a display row. If absolute is false, Base and Write are
// rendered relative to the process's current working directory, with empty
// results rendered as ".".
func (m *Monitor) ToRecord(absolute bool) Record {
	base, write := m.Base, m.Write
	if !absolute {
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, m.Base); err == nil {
				base = relOrDot(rel)
			}
			if rel, err := filepath.Rel(cwd, m.Write); err == nil {
				write = relOrDot(rel)
			}
		}
	}
	return Record{Pattern: m.Pattern, Base: base, Write: write, Links: len(m.Links)}
}

// relOrDot renders "" as "." for display.
func relOrDot(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}

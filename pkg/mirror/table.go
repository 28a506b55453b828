package mirror

import "fmt"

// Table is the daemon's ordered, 1-based-addressable sequence of monitors.
// It is mutated only by the daemon's single thread, so it carries no
// internal locking.
type Table struct {
	monitors []*Monitor
}

// NewTable creates an empty monitor table.
func NewTable() *Table {
	return &Table{}
}

// Add appends a monitor to the end of the table.
func (t *Table) Add(m *Monitor) {
	t.monitors = append(t.monitors, m)
}

// Len returns the number of monitors in the table.
func (t *Table) Len() int {
	return len(t.monitors)
}

// All returns every monitor in table order. The returned slice aliases the
// table's internal storage and must not be mutated by the caller.
func (t *Table) All() []*Monitor {
	return t.monitors
}

// At returns the 1-based nth monitor. An out-of-range n (including 0, which
// callers should handle as "all" before calling At) returns an error.
func (t *Table) At(n int) (*Monitor, error) {
	if n < 1 || n > len(t.monitors) {
		return nil, fmt.Errorf("link %d does not exist", n)
	}
	return t.monitors[n-1], nil
}

// RemoveAt removes the 1-based nth monitor.
func (t *Table) RemoveAt(n int) error {
	if n < 1 || n > len(t.monitors) {
		return fmt.Errorf("link %d does not exist", n)
	}
	t.monitors = append(t.monitors[:n-1], t.monitors[n:]...)
	return nil
}

// RemoveAll clears the table.
func (t *Table) RemoveAll() {
	t.monitors = nil
}

// RemoveWhere removes every monitor for which predicate returns true,
// preserving the relative order of the rest. Used by the daemon loop to
// drop monitors whose write directory has disappeared or whose
// reconciliation failed fatally.
func (t *Table) RemoveWhere(predicate func(*Monitor) bool) {
	kept := t.monitors[:0]
	for _, m := range t.monitors {
		if !predicate(m) {
			kept = append(kept, m)
		}
	}
	t.monitors = kept
}

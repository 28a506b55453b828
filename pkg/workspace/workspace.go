// Package workspace implements the workspace store: persistence and
// restoration of named monitor-set snapshots.
package workspace

import "github.com/boardmirror/boardmirror/pkg/mirror"

// Workspace is a named snapshot of a monitor set: a free-text description
// plus the identity triples of the monitors it contains. Links are never
// part of a Workspace; they're re-derived when the workspace is loaded and
// its monitors begin reconciling.
type Workspace struct {
	Description string            `json:"desc"`
	Monitors    []mirror.Identity `json:"monitors"`
}

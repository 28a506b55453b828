package client

import (
	"github.com/boardmirror/boardmirror/pkg/daemon"
	"github.com/boardmirror/boardmirror/pkg/logging"
)

// GetPort implements the ping-and-sweep daemon selector: enumerate the
// port registry, ping each candidate, return the first live responder, and
// garbage-collect entries that don't answer. It returns 0 if no live
// daemon is found, which callers treat as "no daemon running".
func GetPort(logger *logging.Logger) (uint16, error) {
	candidates, err := daemon.CandidatePorts()
	if err != nil {
		return 0, err
	}

	for _, port := range candidates {
		if New(port).Ping() {
			return port, nil
		}
		daemon.RemoveStalePort(port, logger)
	}
	return 0, nil
}

//go:build !linux && !darwin

package board

import "errors"

// CandidateRoots has no platform-specific mount enumeration on this
// platform; callers should pass an explicit write directory instead of
// relying on board presence detection.
func CandidateRoots() ([]string, error) {
	return nil, errors.New("board presence detection is not supported on this platform")
}

//go:build !windows && !plan9

package daemon

import (
	"syscall"
)

// daemonProcessAttributes detach the forked daemon from the starting
// terminal's session so it keeps running after the shell exits.
var daemonProcessAttributes = &syscall.SysProcAttr{
	Setsid: true,
}

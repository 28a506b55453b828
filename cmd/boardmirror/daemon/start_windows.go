package daemon

import (
	"syscall"
)

const detachedProcess = 0x00000008

// daemonProcessAttributes detach the forked daemon into its own process
// group so console signals sent to the starting shell don't reach it.
var daemonProcessAttributes = &syscall.SysProcAttr{
	CreationFlags: detachedProcess | syscall.CREATE_NEW_PROCESS_GROUP,
}

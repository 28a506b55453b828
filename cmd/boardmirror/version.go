package main

import (
	"fmt"

	"github.com/boardmirror/boardmirror/pkg/boardmirror"
)

// printVersion prints the CLI's version information.
func printVersion() {
	fmt.Printf("%d.%d.%d\n", boardmirror.VersionMajor, boardmirror.VersionMinor, boardmirror.VersionPatch)
}

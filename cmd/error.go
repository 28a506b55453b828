package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Warning prints a warning message to standard error.
func Warning(message string) {
	fmt.Fprintln(color.Error, color.YellowString("Warning:"), message)
}

// Error prints an error message to standard out. Failures are reported on
// stdout rather than stderr: the CLI contract is exit code plus a message on
// stdout, so scripts can capture one stream for both success and failure
// output.
func Error(err error) {
	fmt.Fprintln(os.Stdout, color.RedString("Error:"), err)
}

// Fatal prints an error message and then terminates the process with an
// error exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}

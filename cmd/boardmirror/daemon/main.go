// Package daemon implements the "server" command group: run, start, and
// stop control of the boardmirror reconciliation daemon.
package daemon

import (
	"github.com/spf13/cobra"
)

// serverMain is the entry point for the bare server command.
func serverMain(command *cobra.Command, _ []string) error {
	command.Help()
	return nil
}

// ServerCommand is the server command.
var ServerCommand = &cobra.Command{
	Use:          "server",
	Short:        "Control the lifecycle of the boardmirror daemon",
	RunE:         serverMain,
	SilenceUsage: true,
}

func init() {
	flags := ServerCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")

	ServerCommand.AddCommand(
		runCommand,
		startCommand,
		stopCommand,
	)
}

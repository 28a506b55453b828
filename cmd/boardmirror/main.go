// Command boardmirror is the CLI front-end for the boardmirror daemon: it
// starts/stops the daemon, manages file monitors, and saves/loads
// workspaces.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd"
	"github.com/boardmirror/boardmirror/cmd/boardmirror/daemon"
	"github.com/boardmirror/boardmirror/cmd/boardmirror/link"
	"github.com/boardmirror/boardmirror/cmd/boardmirror/workspace"
)

func rootMain(command *cobra.Command, _ []string) {
	if rootConfiguration.version {
		printVersion()
		return
	}
	command.Help()
}

var rootCommand = &cobra.Command{
	Use:   "boardmirror",
	Short: "boardmirror mirrors files to a microcontroller's mass-storage mount as they change",
	Run:   rootMain,
}

var rootConfiguration struct {
	help    bool
	version bool
}

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		cmd.Warning("unable to load .env file: " + err.Error())
	}

	flags := rootCommand.Flags()
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")
	flags.BoolVarP(&rootConfiguration.version, "version", "V", false, "Show version information")

	cobra.EnableCommandSorting = false
	cobra.MousetrapHelpText = ""

	rootCommand.AddCommand(
		daemon.ServerCommand,
		pingCommand,
		echoCommand,
		link.StartCommand,
		link.StopCommand,
		link.ViewCommand,
		link.LedgerCommand,
		workspace.WorkspaceCommand,
	)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

package workspace

import (
	"github.com/spf13/cobra"
)

// workspaceMain is the entry point for the bare workspace command.
func workspaceMain(command *cobra.Command, _ []string) error {
	command.Help()
	return nil
}

// WorkspaceCommand is the workspace command.
var WorkspaceCommand = &cobra.Command{
	Use:          "workspace",
	Short:        "Save, load, and manage named monitor-set snapshots",
	RunE:         workspaceMain,
	SilenceUsage: true,
}

func init() {
	flags := WorkspaceCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")

	WorkspaceCommand.AddCommand(
		SaveCommand,
		LoadCommand,
		ListCommand,
		ViewCommand,
		CurrentCommand,
		DeleteCommand,
		RenameCommand,
	)
}

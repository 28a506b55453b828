package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
)

// renameMain is the entry point for the rename command.
func renameMain(_ *cobra.Command, arguments []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Rename(arguments[0], arguments[1]); err != nil {
		return fmt.Errorf("unable to rename workspace: %w", err)
	}
	return nil
}

// RenameCommand is the rename command.
var RenameCommand = &cobra.Command{
	Use:          "rename <old> <new>",
	Short:        "Rename a saved workspace",
	Args:         cobra.ExactArgs(2),
	RunE:         renameMain,
	SilenceUsage: true,
}

func init() {
	flags := RenameCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
}

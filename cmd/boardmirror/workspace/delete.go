package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteMain is the entry point for the delete command.
func deleteMain(_ *cobra.Command, arguments []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Delete(arguments[0]); err != nil {
		return fmt.Errorf("unable to delete workspace: %w", err)
	}
	return nil
}

// DeleteCommand is the delete command.
var DeleteCommand = &cobra.Command{
	Use:          "delete <name>",
	Short:        "Delete a saved workspace",
	Args:         cobra.ExactArgs(1),
	RunE:         deleteMain,
	SilenceUsage: true,
}

func init() {
	flags := DeleteCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
}

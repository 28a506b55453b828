package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listMain is the entry point for the list command.
func listMain(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	names, err := store.List()
	if err != nil {
		return fmt.Errorf("unable to list workspaces: %w", err)
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// ListCommand is the list command.
var ListCommand = &cobra.Command{
	Use:          "list",
	Short:        "List saved workspace names",
	Args:         cobra.NoArgs,
	RunE:         listMain,
	SilenceUsage: true,
}

func init() {
	flags := ListCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
}

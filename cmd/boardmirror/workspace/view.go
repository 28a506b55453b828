package workspace

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/pkg/mirror"
)

// viewMain is the entry point for the view command.
func viewMain(_ *cobra.Command, arguments []string) error {
	name := arguments[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	ws, err := store.Load(name)
	if err != nil {
		return fmt.Errorf("unable to load workspace: %w", err)
	}

	if ws.Description != "" {
		fmt.Println("Description:", ws.Description)
	}

	records := make([]mirror.Record, len(ws.Monitors))
	for i, identity := range ws.Monitors {
		records[i] = mirror.Record{Pattern: identity.Pattern, Base: identity.Base, Write: identity.Write}
	}

	printWorkspaceMonitors(records, viewConfiguration.absolute)
	return nil
}

func printWorkspaceMonitors(records []mirror.Record, absolute bool) {
	if len(records) == 0 {
		fmt.Println("No monitors in this workspace.")
		return
	}
	for i, record := range records {
		base, write := record.Base, record.Write
		if !absolute {
			base, write = relativize(base), relativize(write)
		}
		fmt.Printf("%d: %s  %s -> %s\n", i+1, record.Pattern, base, write)
	}
}

// ViewCommand is the view command.
var ViewCommand = &cobra.Command{
	Use:          "view <name>",
	Short:        "View the monitor identities saved in a workspace",
	Args:         cobra.ExactArgs(1),
	RunE:         viewMain,
	SilenceUsage: true,
}

var viewConfiguration struct {
	absolute bool
}

func init() {
	flags := ViewCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
	flags.BoolVarP(&viewConfiguration.absolute, "absolute", "a", false, "Show absolute paths")
}

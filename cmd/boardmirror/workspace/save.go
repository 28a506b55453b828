package workspace

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd/boardmirror/common"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/mirror"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// saveMain is the entry point for the save command. It queries the running
// daemon for the current monitor set via ViewLink and persists the identity
// triples only; links are never part of a saved snapshot.
func saveMain(_ *cobra.Command, arguments []string) error {
	name := arguments[0]

	daemonClient, err := common.Connect(0, logging.RootLogger)
	if err != nil {
		return err
	}

	response, err := daemonClient.Send(protocol.Request{Type: protocol.RequestViewLink, Number: 0, Absolute: true})
	if err != nil {
		return fmt.Errorf("unable to read current monitors: %w", err)
	}

	var records []mirror.Record
	if response.Type == protocol.ResponseLinks {
		if err := protocol.DecodeLinks(response, &records); err != nil {
			return fmt.Errorf("unable to decode monitor list: %w", err)
		}
	}

	identities := make([]mirror.Identity, len(records))
	for i, record := range records {
		identities[i] = mirror.Identity{Pattern: record.Pattern, Base: record.Base, Write: record.Write}
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.Save(name, saveConfiguration.description, identities, saveConfiguration.force); err != nil {
		return fmt.Errorf("unable to save workspace: %w", err)
	}

	if _, err := daemonClient.Send(protocol.Request{Type: protocol.RequestSetWorkspaceName, Name: name}); err != nil {
		return fmt.Errorf("workspace saved, but unable to update the daemon's current workspace name: %w", err)
	}

	return nil
}

// SaveCommand is the save command.
var SaveCommand = &cobra.Command{
	Use:          "save <name>",
	Short:        "Save the current monitor set as a named workspace",
	Args:         cobra.ExactArgs(1),
	RunE:         saveMain,
	SilenceUsage: true,
}

var saveConfiguration struct {
	description string
	force       bool
}

func init() {
	flags := SaveCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
	flags.StringVarP(&saveConfiguration.description, "description", "d", "", "Workspace description")
	flags.BoolVarP(&saveConfiguration.force, "force", "f", false, "Overwrite an existing workspace of the same name")
}

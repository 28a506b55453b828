package workspace

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd/boardmirror/common"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// loadMain is the entry point for the load command. Loading is composed
// client-side out of RPC primitives: stop every monitor, deserialize the
// workspace, start each of its monitors, then set the workspace name.
func loadMain(_ *cobra.Command, arguments []string) error {
	name := arguments[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	ws, err := store.Load(name)
	if err != nil {
		return fmt.Errorf("unable to load workspace: %w", err)
	}

	daemonClient, err := common.Connect(0, logging.RootLogger)
	if err != nil {
		return err
	}

	if _, err := daemonClient.Send(protocol.Request{Type: protocol.RequestStopLink, Number: 0}); err != nil {
		return fmt.Errorf("unable to clear existing monitors: %w", err)
	}

	for _, identity := range ws.Monitors {
		response, err := daemonClient.Send(protocol.Request{
			Type:           protocol.RequestStartLink,
			ReadPattern:    identity.Pattern,
			BaseDirectory:  identity.Base,
			WriteDirectory: identity.Write,
		})
		if err != nil {
			return fmt.Errorf("unable to start monitor %q: %w", identity.Pattern, err)
		}
		if response.Type == protocol.ResponseErrorMessage {
			return fmt.Errorf("unable to start monitor %q: %s", identity.Pattern, response.Message)
		}
	}

	if _, err := daemonClient.Send(protocol.Request{Type: protocol.RequestSetWorkspaceName, Name: name}); err != nil {
		return fmt.Errorf("unable to set current workspace name: %w", err)
	}

	return nil
}

// LoadCommand is the load command.
var LoadCommand = &cobra.Command{
	Use:          "load <name>",
	Short:        "Replace the current monitor set with a saved workspace",
	Args:         cobra.ExactArgs(1),
	RunE:         loadMain,
	SilenceUsage: true,
}

func init() {
	flags := LoadCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
}

package workspace

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd/boardmirror/common"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// currentMain is the entry point for the current command.
func currentMain(_ *cobra.Command, _ []string) error {
	daemonClient, err := common.Connect(0, logging.RootLogger)
	if err != nil {
		return err
	}

	response, err := daemonClient.Send(protocol.Request{Type: protocol.RequestViewWorkspaceName})
	if err != nil {
		return fmt.Errorf("unable to read current workspace name: %w", err)
	}

	if response.Message == "" {
		fmt.Println("(no workspace loaded)")
		return nil
	}
	fmt.Println(response.Message)
	return nil
}

// CurrentCommand is the current command.
var CurrentCommand = &cobra.Command{
	Use:          "current",
	Short:        "Show the name of the currently-loaded workspace, if any",
	Args:         cobra.NoArgs,
	RunE:         currentMain,
	SilenceUsage: true,
}

func init() {
	flags := CurrentCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
}

package daemon

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd"
	"github.com/boardmirror/boardmirror/pkg/client"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// stopMain is the entry point for the stop command.
func stopMain(_ *cobra.Command, _ []string) error {
	port, err := client.GetPort(logging.RootLogger)
	if err != nil {
		return fmt.Errorf("unable to resolve daemon port: %w", err)
	}
	if port == 0 {
		return nil
	}

	response, err := client.New(port).Send(protocol.Request{Type: protocol.RequestShutdown})
	if err != nil {
		return fmt.Errorf("unable to stop daemon: %w", err)
	}
	if response.Type == protocol.ResponseMessage && response.Message == protocol.StoppingMessage {
		return nil
	}
	return fmt.Errorf("unexpected response from daemon: %s", response.Type)
}

// stopCommand is the stop command.
var stopCommand = &cobra.Command{
	Use:          "stop",
	Short:        "Stop the boardmirror daemon if it's running",
	Args:         cmd.DisallowArguments,
	RunE:         stopMain,
	SilenceUsage: true,
}

func init() {
	flags := stopCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
}

package link

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd/boardmirror/common"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// stopMain is the entry point for the stop command.
func stopMain(_ *cobra.Command, arguments []string) error {
	number := 0
	if len(arguments) == 1 {
		n, err := strconv.Atoi(arguments[0])
		if err != nil {
			return fmt.Errorf("invalid link number %q", arguments[0])
		}
		number = n
	}

	daemonClient, err := common.Connect(stopConfiguration.port, logging.RootLogger)
	if err != nil {
		return err
	}

	response, err := daemonClient.Send(protocol.Request{Type: protocol.RequestStopLink, Number: number})
	if err != nil {
		return fmt.Errorf("unable to stop monitor: %w", err)
	}
	if response.Type == protocol.ResponseErrorMessage {
		return fmt.Errorf("%s", response.Message)
	}
	return nil
}

// StopCommand is the stop command.
var StopCommand = &cobra.Command{
	Use:          "stop [number]",
	Short:        "Stop one monitor, or all of them if no number is given",
	Args:         cobra.MaximumNArgs(1),
	RunE:         stopMain,
	SilenceUsage: true,
}

var stopConfiguration struct {
	port uint16
}

func init() {
	flags := StopCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
	flags.Uint16Var(&stopConfiguration.port, "port", 0, "Daemon port (defaults to auto-discovery)")
}

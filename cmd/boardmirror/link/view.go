package link

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd/boardmirror/common"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/mirror"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// viewMain is the entry point for the view command.
func viewMain(_ *cobra.Command, arguments []string) error {
	number := 0
	if len(arguments) == 1 {
		n, err := strconv.Atoi(arguments[0])
		if err != nil {
			return fmt.Errorf("invalid link number %q", arguments[0])
		}
		number = n
	}

	daemonClient, err := common.Connect(viewConfiguration.port, logging.RootLogger)
	if err != nil {
		return err
	}

	response, err := daemonClient.Send(protocol.Request{
		Type:     protocol.RequestViewLink,
		Number:   number,
		Absolute: viewConfiguration.absolute,
	})
	if err != nil {
		return fmt.Errorf("unable to view monitors: %w", err)
	}
	if response.Type == protocol.ResponseErrorMessage {
		return fmt.Errorf("%s", response.Message)
	}

	var records []mirror.Record
	if err := protocol.DecodeLinks(response, &records); err != nil {
		return fmt.Errorf("unable to decode monitor list: %w", err)
	}

	common.PrintLinks(records)
	return nil
}

// ViewCommand is the view command.
var ViewCommand = &cobra.Command{
	Use:          "view [number]",
	Short:        "View one monitor, or all of them if no number is given",
	Args:         cobra.MaximumNArgs(1),
	RunE:         viewMain,
	SilenceUsage: true,
}

var viewConfiguration struct {
	absolute bool
	port     uint16
}

func init() {
	flags := ViewCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
	flags.BoolVarP(&viewConfiguration.absolute, "absolute", "a", false, "Show absolute paths")
	flags.Uint16Var(&viewConfiguration.port, "port", 0, "Daemon port (defaults to auto-discovery)")
}

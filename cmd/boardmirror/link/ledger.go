package link

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd/boardmirror/common"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/mirror"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// ledgerMain is the entry point for the ledger command. Ledger is a fixed
// view of every monitor with absolute paths, intended for scripting and
// audit use where the number/-a combination of "view" would otherwise have
// to be spelled out every time.
func ledgerMain(_ *cobra.Command, _ []string) error {
	daemonClient, err := common.Connect(0, logging.RootLogger)
	if err != nil {
		return err
	}

	response, err := daemonClient.Send(protocol.Request{
		Type:     protocol.RequestViewLink,
		Number:   0,
		Absolute: true,
	})
	if err != nil {
		return fmt.Errorf("unable to read ledger: %w", err)
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

// LedgerCommand is the ledger command.
var LedgerCommand = &cobra.Command{
	Use:          "ledger",
	Short:        "Show every monitor with absolute paths",
	Args:         cobra.NoArgs,
	RunE:         ledgerMain,
	SilenceUsage: true,
}

func init() {
	flags := LedgerCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
}

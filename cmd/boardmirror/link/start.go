// Package link implements the bare start/stop/view/ledger commands that
// create, remove, and inspect monitors on the running daemon.
package link

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd/boardmirror/common"
	"github.com/boardmirror/boardmirror/pkg/board"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/protocol"
)

// startMain is the entry point for the start command.
func startMain(_ *cobra.Command, arguments []string) error {
	pattern := arguments[0]

	writeDirectory := startConfiguration.writeDirectory
	if writeDirectory == "" {
		root, err := board.Find()
		if err != nil {
			return fmt.Errorf("unable to locate a connected board, and no write path was given with -p: %w", err)
		}
		writeDirectory = root
	}

	baseDirectory, err := filepath.Abs(".")
	if err != nil {
		return fmt.Errorf("unable to determine base directory: %w", err)
	}
	writeDirectory, err = filepath.Abs(writeDirectory)
	if err != nil {
		return fmt.Errorf("unable to resolve write directory: %w", err)
	}

	daemonClient, err := common.Connect(startConfiguration.port, logging.RootLogger)
	if err != nil {
		return err
	}

	response, err := daemonClient.Send(protocol.Request{
		Type:           protocol.RequestStartLink,
		ReadPattern:    pattern,
		BaseDirectory:  baseDirectory,
		WriteDirectory: writeDirectory,
	})
	if err != nil {
		return fmt.Errorf("unable to start monitor: %w", err)
	}
	if response.Type == protocol.ResponseErrorMessage {
		return fmt.Errorf("%s", response.Message)
	}

	fmt.Printf("Monitoring %q in %s, mirroring to %s\n", pattern, baseDirectory, writeDirectory)
	return nil
}

// StartCommand is the start command.
var StartCommand = &cobra.Command{
	Use:          "start <pattern>",
	Short:        "Start mirroring files matching a glob pattern",
	Args:         cobra.ExactArgs(1),
	RunE:         startMain,
	SilenceUsage: true,
}

var startConfiguration struct {
	writeDirectory string
	port           uint16
}

func init() {
	flags := StartCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
	flags.StringVarP(&startConfiguration.writeDirectory, "path", "p", "",
		"Write directory (defaults to an auto-detected board mount)")
	flags.Uint16Var(&startConfiguration.port, "port", 0, "Daemon port (defaults to auto-discovery)")
}

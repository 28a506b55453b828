package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd"
	"github.com/boardmirror/boardmirror/pkg/client"
	"github.com/boardmirror/boardmirror/pkg/logging"
)

// pingMain is the entry point for the ping command.
func pingMain(_ *cobra.Command, _ []string) error {
	port := pingConfiguration.port
	if port == 0 {
		resolved, err := client.GetPort(logging.RootLogger)
		if err != nil {
			return fmt.Errorf("unable to resolve daemon port: %w", err)
		}
		port = resolved
	}
	if port == 0 {
		return fmt.Errorf("no running daemon found")
	}

	if !client.New(port).Ping() {
		return fmt.Errorf("daemon on port %d did not respond", port)
	}

	fmt.Printf("Daemon is running on port %d\n", port)
	return nil
}

// pingCommand is the ping command.
var pingCommand = &cobra.Command{
	Use:          "ping",
	Short:        "Check whether the boardmirror daemon is running and responsive",
	Args:         cmd.DisallowArguments,
	RunE:         pingMain,
	SilenceUsage: true,
}

var pingConfiguration struct {
	port uint16
}

func init() {
	flags := pingCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
	flags.Uint16VarP(&pingConfiguration.port, "port", "p", 0, "Ping a specific port rather than auto-discovering")
}

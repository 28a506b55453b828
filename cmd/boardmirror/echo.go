package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/pkg/client"
	"github.com/boardmirror/boardmirror/pkg/logging"
)

// echoMain is the entry point for the echo command.
func echoMain(_ *cobra.Command, arguments []string) error {
	port := echoConfiguration.port
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

	reply, err := client.New(port).Echo(arguments[0])
	if err != nil {
		return fmt.Errorf("unable to echo: %w", err)
	}

	fmt.Println(reply)
	return nil
}

// echoCommand is the echo command, a round-trip diagnostic beyond Ping's
// bare liveness check: it proves the daemon decoded the request, ran it
// through the dispatch loop, and encoded a well-formed response.
var echoCommand = &cobra.Command{
	Use:          "echo <message>",
	Short:        "Ask the daemon to echo a message back",
	Args:         cobra.ExactArgs(1),
	RunE:         echoMain,
	SilenceUsage: true,
}

var echoConfiguration struct {
	port uint16
}

func init() {
	flags := echoCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
	flags.Uint16VarP(&echoConfiguration.port, "port", "p", 0, "Echo off a specific port rather than auto-discovering")
}

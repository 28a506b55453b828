package daemon

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd"
	"github.com/boardmirror/boardmirror/pkg/client"
	"github.com/boardmirror/boardmirror/pkg/logging"
)

// startMain is the entry point for the start command.
func startMain(_ *cobra.Command, _ []string) error {
	if port, err := client.GetPort(logging.RootLogger); err == nil && port != 0 {
		if client.New(port).Ping() {
			return nil
		}
	}

	executablePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("unable to determine executable path: %w", err)
	}

	daemonProcess := &exec.Cmd{
		Path:        executablePath,
		Args:        []string{executablePath, "server", "run"},
		SysProcAttr: daemonProcessAttributes,
	}
	if err := daemonProcess.Start(); err != nil {
		return fmt.Errorf("unable to fork daemon: %w", err)
	}

	return nil
}

// startCommand is the start command.
var startCommand = &cobra.Command{
	Use:          "start",
	Short:        "Start the boardmirror daemon if it's not already running",
	Args:         cmd.DisallowArguments,
	RunE:         startMain,
	SilenceUsage: true,
}

func init() {
	flags := startCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
}

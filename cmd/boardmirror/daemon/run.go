package daemon

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/boardmirror/boardmirror/cmd"
	"github.com/boardmirror/boardmirror/pkg/boardmirror"
	"github.com/boardmirror/boardmirror/pkg/config"
	"github.com/boardmirror/boardmirror/pkg/daemon"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/must"
)

// runMain is the entry point for the run command. It runs the daemon
// in the foreground of the current process; "start" is what forks this
// into the background.
func runMain(_ *cobra.Command, _ []string) error {
	lock, err := daemon.AcquireLock(logging.RootLogger)
	if err != nil {
		return fmt.Errorf("unable to acquire daemon lock: %w", err)
	}
	defer must.Succeed(lock.Release(), "release daemon lock", logging.RootLogger)

	logFile, err := daemon.OpenLog()
	if err != nil {
		return fmt.Errorf("unable to open daemon log: %w", err)
	}
	defer must.Close(logFile, logging.RootLogger)
	logging.SetOutput(io.MultiWriter(logFile, os.Stderr))

	daemonConfig := config.Load(logging.RootLogger)
	if daemonConfig.LogLevel == "debug" {
		boardmirror.DebugEnabled = true
	}

	port := runConfiguration.port
	if port == 0 {
		port = daemonConfig.Port
	}

	terminationSignals := make(chan os.Signal, 1)
	signal.Notify(terminationSignals, cmd.TerminationSignals...)

	server, err := daemon.New(port, daemonConfig.PollInterval, logging.RootLogger)
	if err != nil {
		return fmt.Errorf("unable to create daemon: %w", err)
	}
	logging.RootLogger.Infof("daemon listening on port %d", server.Port())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErrors := make(chan error, 1)
	go func() {
		runErrors <- server.Run(ctx)
	}()

	select {
	case err := <-runErrors:
		if err != nil {
			return fmt.Errorf("daemon loop failed: %w", err)
		}
		return nil
	case sig := <-terminationSignals:
		logging.RootLogger.Infof("received signal %v, shutting down", sig)
		cancel()
		return <-runErrors
	}
}

// runCommand is the run command.
var runCommand = &cobra.Command{
	Use:          "run",
	Short:        "Run the boardmirror daemon in the foreground",
	Args:         cmd.DisallowArguments,
	RunE:         runMain,
	SilenceUsage: true,
}

var runConfiguration struct {
	port uint16
}

func init() {
	flags := runCommand.Flags()
	flags.SortFlags = false
	flags.BoolP("help", "h", false, "Show help information")
	flags.Uint16VarP(&runConfiguration.port, "port", "p", 0, "Bind to a specific port (0 uses BOARDMIRROR_DAEMON_PORT, or an OS-assigned port if that is unset)")
}

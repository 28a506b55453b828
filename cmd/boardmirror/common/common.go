// Package common provides helpers shared by the boardmirror CLI
// subcommands: connecting to the daemon (resolving its port via the
// registry when not specified explicitly) and rendering monitor tables.
package common

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/boardmirror/boardmirror/pkg/client"
	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/mirror"
)

// ResolvePort returns the port to use for dialing the daemon. If explicit is
// non-zero, it's used as-is (the user asked for a specific daemon). Otherwise
// the port registry's ping-and-sweep selector is used, which returns 0 if
// no live daemon exists.
func ResolvePort(explicit uint16, logger *logging.Logger) (uint16, error) {
	if explicit != 0 {
		return explicit, nil
	}
	return client.GetPort(logger)
}

// Connect resolves the daemon port and returns a client bound to it.
func Connect(explicit uint16, logger *logging.Logger) (*client.Client, error) {
	port, err := ResolvePort(explicit, logger)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve daemon port: %w", err)
	}
	if port == 0 {
		return nil, fmt.Errorf("no running daemon found (try \"boardmirror server start\")")
	}
	return client.New(port), nil
}

// colorEnabled reports whether colorized table headers should be emitted,
// gating on TTY detection rather than forcing color into redirected output.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// PrintLinks renders monitor records as an aligned table: index, pattern,
// base directory, write directory, and link count. Whether Base/Write are
// absolute or relative is decided by the request that produced records;
// this function only renders what it's given.
func PrintLinks(records []mirror.Record) {
	if len(records) == 0 {
		fmt.Println("No monitors registered.")
		return
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer writer.Flush()

	header := "#\tPATTERN\tBASE\tWRITE\tLINKS"
	if colorEnabled() {
		header = color.New(color.Bold).Sprint(header)
	}
	fmt.Fprintln(writer, header)

	for i, record := range records {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
			i+1, record.Pattern, record.Base, record.Write, humanize.Comma(int64(record.Links)))
	}
}

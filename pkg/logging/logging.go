package logging

import (
	"io"
	"log"
	"os"
)

func init() {
	// Set the global logger to use standard output. This is overridden by
	// SetOutput for contexts (such as the daemon) that need to direct log
	// output elsewhere.
	log.SetOutput(os.Stdout)
}

// SetOutput redirects the output of every Logger (they all share the
// standard library's default logger under the hood) to w.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

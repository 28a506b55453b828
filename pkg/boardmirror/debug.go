package boardmirror

import "os"

// DebugEnabled indicates whether or not debug logging is enabled. It's
// determined at startup from the BOARDMIRROR_DEBUG environment variable and
// consulted by pkg/logging to gate Debug/Debugf output.
var DebugEnabled = os.Getenv("BOARDMIRROR_DEBUG") != ""

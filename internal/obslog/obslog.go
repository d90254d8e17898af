// Package obslog wraps github.com/hashicorp/go-hclog with the three log
// levels montsim.py's printers module exposed (verbose, vverbose,
// warning), so the rest of this repository logs through one small,
// leveled surface instead of depending on hclog directly everywhere.
package obslog

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New returns an hclog.Logger named "simcore", writing to os.Stderr at
// level, suitable as the root logger cmd/simcli constructs and threads
// into package simulator.
func New(level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "simcore",
		Level:  level,
		Output: os.Stderr,
	})
}

// Verbose logs a normal-priority progress message, matching
// montsim.py's printers.verbose (e.g. "Assignments: ...", "Successful!").
func Verbose(log hclog.Logger, msg string, args ...interface{}) {
	log.Info(msg, args...)
}

// VeryVerbose logs a high-frequency, per-iteration trace message,
// matching montsim.py's printers.vverbose (e.g. "Getting Guide...",
// "Selecting timepoint...").
func VeryVerbose(log hclog.Logger, msg string, args ...interface{}) {
	log.Debug(msg, args...)
}

// Warning logs an unexpected-but-recoverable condition, matching
// montsim.py's printers.warning (e.g. the SREA-assigned-an-invalid-time
// recovery path in package dispatch).
func Warning(log hclog.Logger, msg string, args ...interface{}) {
	log.Warn(msg, args...)
}

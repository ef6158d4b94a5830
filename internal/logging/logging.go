// Package logging sets up the process-wide zerolog logger and the
// warn-once helper numerical hazards (§7 category 2) are logged through.
// WarnOnce only logs; substituting zero is left to the caller. Its callers
// are the MIS weight's zero-PDF and non-finite cases; core.Color.Scale's
// non-finite-scalar case substitutes black without logging.
package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger, configured by Init.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Init sets the global level: debug when requested (-d), info otherwise,
// mirroring the original's env_logger debug/info split in main.rs.
func Init(debug bool) {
	if debug {
		Log = Log.Level(zerolog.DebugLevel)
	} else {
		Log = Log.Level(zerolog.InfoLevel)
	}
}

var warnedOnce sync.Map

// WarnOnce logs msg at warn level the first time it's seen for key, and is
// silent on every subsequent call with the same key — a multi-hour render
// that hits the same numerical hazard millions of times must not flood the
// log, but the first occurrence should still be visible.
func WarnOnce(key, msg string) {
	if _, loaded := warnedOnce.LoadOrStore(key, struct{}{}); !loaded {
		Log.Warn().Str("hazard", key).Msg(msg)
	}
}

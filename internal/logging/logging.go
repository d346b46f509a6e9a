// Package logging sets up the debug logger. The terminal belongs to the
// TUI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"unitval/internal/tui/state"
)

// Open returns a logger writing to path, or a no-op logger when path is
// empty. The returned closer is never nil.
func Open(path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log: %w", err)
	}
	return New(f), f, nil
}

// New returns a debug-level logger writing JSON lines to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Outcome logs one dispatched action together with the resulting state.
func Outcome(l zerolog.Logger, s state.UIState, out state.Outcome) {
	l.Debug().
		Str("op", out.Action.Kind.String()).
		Str("outcome", out.Kind.String()).
		Str("unit", s.Unit.Suffix()).
		Str("from", out.From).
		Str("text", s.Text).
		Float64("committed", s.Committed).
		Bool("snapped", out.Snapped).
		Msg("dispatch")
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

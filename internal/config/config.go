package config

import (
    "errors"
    "flag"
    "fmt"
    "io"
    "math"

    "unitval/internal/tui/state"
)

var ErrInvalidValue = errors.New("invalid value")

// Options are the command-line settings of an editing session.
// There is no config file; everything comes from flags.
type Options struct {
    Unit      state.Unit
    Value     float64 // initial committed value
    NoColor   bool
    AltScreen bool
    LogPath   string // debug log file, empty disables logging
    JSON      bool   // replay: emit JSON lines
}

// Defaults returns the options of a fresh control: 0 percent.
func Defaults() Options {
    return Options{Unit: state.Percent}
}

// Parse reads flags for the named subcommand from args. Positional
// arguments left after the flags are returned as rest.
func Parse(name string, args []string, stderr io.Writer) (opts Options, rest []string, err error) {
    opts = Defaults()
    fs := flag.NewFlagSet(name, flag.ContinueOnError)
    fs.SetOutput(stderr)

    unit := fs.String("unit", "%", "initial unit: % | px")
    fs.Float64Var(&opts.Value, "value", 0, "initial value (0..100)")
    fs.BoolVar(&opts.NoColor, "no-color", false, "disable colors (NO_COLOR is honored too)")
    fs.StringVar(&opts.LogPath, "log", "", "write a debug log to this file")
    if name == "replay" {
        fs.BoolVar(&opts.JSON, "json", false, "print one JSON object per action")
    } else {
        fs.BoolVar(&opts.AltScreen, "alt-screen", false, "use the terminal's alternate screen")
    }

    if err := fs.Parse(args); err != nil {
        return opts, nil, err
    }
    if opts.Unit, err = state.ParseUnit(*unit); err != nil {
        return opts, nil, err
    }
    if err := opts.Validate(); err != nil {
        return opts, nil, err
    }
    return opts, fs.Args(), nil
}

// Validate checks that the initial value is one the control could have
// committed itself.
func (o Options) Validate() error {
    if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
        return fmt.Errorf("%w: %v is not finite", ErrInvalidValue, o.Value)
    }
    if o.Value < 0 || o.Value > state.Ceiling {
        return fmt.Errorf("%w: %v outside 0..%v", ErrInvalidValue, o.Value, state.Ceiling)
    }
    return nil
}

// Initial returns the editor state the options describe.
func (o Options) Initial() state.UIState {
    return state.New(o.Unit, state.Round1(o.Value))
}

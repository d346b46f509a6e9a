// Copyright
// SPDX-License-Identifier: MIT
// unitval: numeric value editor with a percent/pixel unit toggle
package main

import (
    "bufio"
    "encoding/json"
    "errors"
    "flag"
    "fmt"
    "io"
    "os"
    "strings"

    "github.com/rs/zerolog"

    "unitval/internal/config"
    "unitval/internal/logging"
    appTUI "unitval/internal/tui"
    "unitval/internal/tui/state"
)

const Version = "0.3.0"

/* ---------- CLI ---------- */

func main() {
    args := os.Args[1:]
    cmd := "edit"
    if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
        cmd, args = args[0], args[1:]
    }
    switch cmd {
    case "help", "-h", "--help":
        if len(args) > 0 {
            helpTopic(args[0])
        } else {
            usage()
        }
    case "version":
        fmt.Println("unitval", Version)
    case "edit":
        os.Exit(cmdEdit(args))
    case "replay":
        os.Exit(cmdReplay(args, os.Stdin, os.Stdout))
    default:
        usage()
        os.Exit(2)
    }
}

func usage() {
    fmt.Println(`unitval ` + Version + `
Edit a number between 0 and 100 as a percentage or in pixels.
USAGE
  unitval [command] [options]
COMMANDS
  edit         Interactive editor (default). Prints the committed value, e.g. 12.5% or 40px
  replay       Apply scripted actions without a terminal and print the state after each
  help         Show help (try: unitval help replay)
  version      Print version
NOTES
  • Typing is free; the value is checked when the input loses focus (tab, enter, esc, ↑/↓).
  • In percent, anything above 100 is capped to 100 right away.
  • NO_COLOR or --no-color switches to plain ASCII rendering.`)
}

func helpTopic(name string) {
    switch name {
    case "edit":
        fmt.Println(`USAGE
  unitval edit [--unit %|px] [--value N] [--no-color] [--alt-screen] [--log PATH]
OPTIONS
  --unit U        Initial unit (default: %)
  --value N       Initial value, 0..100 (default: 0)
  --no-color      Plain ASCII rendering
  --alt-screen    Use the alternate screen
  --log PATH      Append a JSON debug log of every action to PATH
EXIT STATUS
  0 on quit (q), 130 when cancelled with ctrl+c, 1 on error, 2 on usage error.`)
    case "replay":
        fmt.Println(`USAGE
  unitval replay [--unit %|px] [--value N] [--json] [--log PATH] [ACTION ...]
DESCRIPTION
  Applies actions in order, from the arguments or one per line on stdin, and
  prints the state after each one.
ACTIONS
  inc | dec       Press + or -
  type TEXT       Replace the input text with TEXT (verbatim, spaces included)
  commit          Leave the input
  unit % | px     Press a unit button
EXAMPLE
  unitval replay "type 12,5" commit inc`)
    default:
        usage()
    }
}

/* ---------- commands ---------- */

func cmdEdit(args []string) int {
    opts, _, err := config.Parse("edit", args, os.Stderr)
    if err != nil {
        return usageError(err)
    }
    log, closer, err := logging.Open(opts.LogPath)
    if err != nil {
        fmt.Fprintln(os.Stderr, "error:", err)
        return 1
    }
    defer closer.Close()

    log.Info().Str("unit", opts.Unit.Suffix()).Float64("value", opts.Value).Msg("editor start")
    res, err := appTUI.Run(opts, log)
    if err != nil {
        log.Error().Err(err).Msg("editor failed")
        fmt.Fprintln(os.Stderr, "error:", err)
        return 1
    }
    log.Info().Str("result", res.Label()).Bool("cancelled", res.Cancelled).Msg("editor exit")
    if res.Cancelled {
        return 130
    }
    fmt.Println(res.Label())
    return 0
}

func cmdReplay(args []string, stdin io.Reader, stdout io.Writer) int {
    opts, rest, err := config.Parse("replay", args, os.Stderr)
    if err != nil {
        return usageError(err)
    }
    log, closer, err := logging.Open(opts.LogPath)
    if err != nil {
        fmt.Fprintln(os.Stderr, "error:", err)
        return 1
    }
    defer closer.Close()

    var src io.Reader = stdin
    if len(rest) > 0 {
        src = strings.NewReader(strings.Join(rest, "\n"))
    }
    if err := replay(opts, src, stdout, log); err != nil {
        fmt.Fprintln(os.Stderr, "error:", err)
        if errors.Is(err, state.ErrUnknownAction) || errors.Is(err, state.ErrInvalidUnit) {
            return 2
        }
        return 1
    }
    return 0
}

// replayLine is the JSON shape of one replay step.
type replayLine struct {
    Action    string  `json:"action"`
    Outcome   string  `json:"outcome"`
    Unit      string  `json:"unit"`
    Text      string  `json:"text"`
    Committed float64 `json:"committed"`
    Snapped   bool    `json:"snapped,omitempty"`
}

// replay feeds each non-empty line of src to the state machine.
func replay(opts config.Options, src io.Reader, w io.Writer, log zerolog.Logger) error {
    s := opts.Initial()
    enc := json.NewEncoder(w)
    sc := bufio.NewScanner(src)
    for n := 1; sc.Scan(); n++ {
        line := sc.Text()
        if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
            continue
        }
        a, err := state.ParseAction(line)
        if err != nil {
            return fmt.Errorf("line %d: %w", n, err)
        }
        var out state.Outcome
        s, out = state.Dispatch(s, a)
        logging.Outcome(log, s, out)

        if opts.JSON {
            if err := enc.Encode(replayLine{
                Action:    a.String(),
                Outcome:   out.Kind.String(),
                Unit:      s.Unit.Suffix(),
                Text:      s.Text,
                Committed: s.Committed,
                Snapped:   out.Snapped,
            }); err != nil {
                return fmt.Errorf("write: %w", err)
            }
            continue
        }
        snapped := ""
        if out.Snapped {
            snapped = " snapped"
        }
        if _, err := fmt.Fprintf(w, "%-14s %-9s text=%q committed=%s%s\n",
            a, out.Kind, s.Text, s.Label(), snapped); err != nil {
            return fmt.Errorf("write: %w", err)
        }
    }
    if err := sc.Err(); err != nil {
        return fmt.Errorf("read actions: %w", err)
    }
    return nil
}

func usageError(err error) int {
    if errors.Is(err, flag.ErrHelp) {
        return 0
    }
    fmt.Fprintln(os.Stderr, "error:", err)
    return 2
}

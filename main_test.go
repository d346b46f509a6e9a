package main

import (
    "bytes"
    "encoding/json"
    "errors"
    "strings"
    "testing"

    "github.com/rs/zerolog"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "unitval/internal/config"
    "unitval/internal/tui/state"
)

func TestReplayText(t *testing.T) {
    var out bytes.Buffer
    script := "type 12,5\ncommit\n\n# comment\ninc\nunit px\n"
    require.NoError(t, replay(config.Defaults(), strings.NewReader(script), &out, zerolog.Nop()))

    lines := strings.Split(strings.TrimSpace(out.String()), "\n")
    require.Len(t, lines, 4)
    assert.Contains(t, lines[0], `text="12.5" committed=0%`)
    assert.Contains(t, lines[1], "accepted")
    assert.Contains(t, lines[2], `text="12.6" committed=12.6%`)
    assert.Contains(t, lines[3], "committed=12.6px")
}

func TestReplayJSONSnap(t *testing.T) {
    var out bytes.Buffer
    opts := config.Defaults()
    opts.JSON = true
    require.NoError(t, replay(opts, strings.NewReader("type 250"), &out, zerolog.Nop()))

    var rec replayLine
    require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
    assert.Equal(t, replayLine{Action: "type 250", Outcome: "edited", Unit: "%", Text: "100", Committed: 100, Snapped: true}, rec)
}

func TestReplayUnknownAction(t *testing.T) {
    err := replay(config.Defaults(), strings.NewReader("inc\nfly"), &bytes.Buffer{}, zerolog.Nop())
    require.Error(t, err)
    assert.True(t, errors.Is(err, state.ErrUnknownAction))
    assert.Contains(t, err.Error(), "line 2")
}

func TestCmdReplayArgs(t *testing.T) {
    var out bytes.Buffer
    code := cmdReplay([]string{"-unit", "px", "-value", "99.9", "inc", "inc"}, strings.NewReader(""), &out)
    require.Equal(t, 0, code)
    lines := strings.Split(strings.TrimSpace(out.String()), "\n")
    require.Len(t, lines, 2)
    assert.Contains(t, lines[0], "committed=100px")
    assert.Contains(t, lines[1], "capped")
}

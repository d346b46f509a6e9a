package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors of the control, modeled on a dark panel.
type Palette struct {
    Panel   lipgloss.Color // control background
    Active  lipgloss.Color // selected unit, focused button
    Text    lipgloss.Color
    Muted   lipgloss.Color
    Primary lipgloss.Color
    Success lipgloss.Color
    Danger  lipgloss.Color
    Warning lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Panel:   lipgloss.Color("#222222"),
        Active:  lipgloss.Color("#333333"),
        Text:    lipgloss.Color("#FFFFFF"),
        Muted:   lipgloss.Color("#9CA3AF"),
        Primary: lipgloss.Color("#3D6DFF"),
        Success: lipgloss.Color("#2AA876"),
        Danger:  lipgloss.Color("#D9534F"),
        Warning: lipgloss.Color("#F0AD4E"),
    }
}

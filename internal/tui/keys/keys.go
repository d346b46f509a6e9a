// Package keys holds the key bindings of the value editor.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding. Bindings marked "outside input" are ignored
// while the text input has focus, so the characters can be typed.
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Increase  key.Binding
	Decrease  key.Binding
	Percent   key.Binding // outside input
	Pixel     key.Binding // outside input
	Left      key.Binding
	Right     key.Binding
	Activate  key.Binding
	Leave     key.Binding // input only: commit and move on
	Cancel    key.Binding // input only: commit and move back
	Copy      key.Binding // outside input
	History   key.Binding // outside input
	Help      key.Binding // outside input
	Quit      key.Binding // outside input
	ForceQuit key.Binding
}

// Default returns the default bindings.
func Default() KeyMap {
	return KeyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Increase:  key.NewBinding(key.WithKeys("up", "+", "="), key.WithHelp("↑/+", "increase")),
		Decrease:  key.NewBinding(key.WithKeys("down", "-"), key.WithHelp("↓/-", "decrease")),
		Percent:   key.NewBinding(key.WithKeys("%"), key.WithHelp("%", "percent")),
		Pixel:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pixel")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "unit left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "unit right")),
		Activate:  key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter/space", "press")),
		Leave:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "commit & back")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy value")),
		History:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "history")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Increase, k.Decrease, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Increase, k.Decrease, k.Percent, k.Pixel, k.Activate},
		{k.Leave, k.Cancel},
		{k.Copy, k.History, k.Help, k.Quit},
	}
}

// Sections groups FullHelp under titles for the help overlay.
func (k KeyMap) Sections() []Section {
	titles := []string{"Navigation", "Value", "Input", "Other"}
	groups := k.FullHelp()
	out := make([]Section, 0, len(groups))
	for i, g := range groups {
		out = append(out, Section{Title: titles[i], Bindings: g})
	}
	return out
}

// Section is a titled group of bindings.
type Section struct {
	Title    string
	Bindings []key.Binding
}

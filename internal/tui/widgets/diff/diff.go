package diff

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
    delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Strikethrough(true)
    addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint   = lipgloss.NewStyle().Faint(true)
)

// Inline renders a one-line character diff from before to after. Removed
// characters are struck through and added ones underlined; with noColor they
// are wrapped as [-x-] and {+x+}.
func Inline(before, after string, noColor bool) string {
    if before == after {
        return before
    }
    d := dmp.New()
    diffs := d.DiffMain(before, after, false)
    diffs = d.DiffCleanupSemantic(diffs)

    var b strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            if noColor {
                b.WriteString("[-" + df.Text + "-]")
            } else {
                b.WriteString(delChar.Render(df.Text))
            }
        case dmp.DiffInsert:
            if noColor {
                b.WriteString("{+" + df.Text + "+}")
            } else {
                b.WriteString(addChar.Render(df.Text))
            }
        case dmp.DiffEqual:
            if noColor {
                b.WriteString(df.Text)
            } else {
                b.WriteString(faint.Render(df.Text))
            }
        }
    }
    return b.String()
}

package state

// MoveFocus sets the focus target. Moving away from the input is a focus
// loss and dispatches a commit; the returned outcome is that commit's, or
// UNCHANGED when no commit happened.
func MoveFocus(s UIState, f Focus) (UIState, Outcome) {
    leaving := s.Focus == FocusInput && f != FocusInput
    s.Focus = f
    if !leaving {
        return s, Outcome{Kind: UNCHANGED, From: s.Text, To: s.Text}
    }
    return Dispatch(s, CommitAction)
}

// Step returns the focus target delta places away, wrapping around.
func (f Focus) Step(delta int) Focus {
    return Focus(((int(f)+delta)%focusCount + focusCount) % focusCount)
}

// FocusNext moves focus one step right, wrapping around.
func FocusNext(s UIState) (UIState, Outcome) {
    return MoveFocus(s, s.Focus.Step(1))
}

// FocusPrev moves focus one step left, wrapping around.
func FocusPrev(s UIState) (UIState, Outcome) {
    return MoveFocus(s, s.Focus.Step(-1))
}

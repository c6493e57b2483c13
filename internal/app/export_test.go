package app

import "io"

// WithTerminalCheck replaces the check deciding whether standard input is a terminal.
func (a *App) WithTerminalCheck(fn func(io.Reader) bool) *App {
	a.isTerminal = fn
	return a
}

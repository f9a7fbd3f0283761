package ui

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrFullscreenUnavailable is returned when the alternate screen cannot be
// used because output is not a terminal.
var ErrFullscreenUnavailable = errors.New("fullscreen unavailable: output is not a terminal")

// Fullscreen tracks whether the presenter owns the alternate screen.
type Fullscreen struct {
	on         bool
	isTerminal func() bool
}

// NewFullscreen returns the fullscreen state. isTerminal defaults to
// StdoutIsTerminal.
func NewFullscreen(on bool, isTerminal func() bool) *Fullscreen {
	if isTerminal == nil {
		isTerminal = StdoutIsTerminal
	}
	return &Fullscreen{on: on, isTerminal: isTerminal}
}

// On reports whether fullscreen is active.
func (f *Fullscreen) On() bool { return f.on }

// Toggle flips fullscreen and returns the command that enters or leaves the
// alternate screen. State is unchanged on error.
func (f *Fullscreen) Toggle() (tea.Cmd, error) {
	if !f.on && !f.isTerminal() {
		return nil, ErrFullscreenUnavailable
	}
	f.on = !f.on
	if f.on {
		return tea.EnterAltScreen, nil
	}
	return tea.ExitAltScreen, nil
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

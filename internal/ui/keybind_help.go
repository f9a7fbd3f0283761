package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap implements help.KeyMap for rendering keybind help with
// bubbles/help.Model.
type KeyMap struct {
	registry *KeybindRegistry
}

// NewKeyMap wraps a registry for the help view.
func NewKeyMap(registry *KeybindRegistry) help.KeyMap {
	return &KeyMap{registry: registry}
}

func (km *KeyMap) pick(actions ...Action) []key.Binding {
	if km.registry == nil {
		return nil
	}
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := km.registry.Binding(a); ok {
			out = append(out, b)
		}
	}
	return out
}

// ShortHelp returns bindings for the one-line help bar.
func (km *KeyMap) ShortHelp() []key.Binding {
	return km.pick(ActionNext, ActionPrev, ActionPrint, ActionAuto, ActionHelp, ActionQuit)
}

// FullHelp returns bindings grouped into navigation, modes and app columns.
func (km *KeyMap) FullHelp() [][]key.Binding {
	cols := [][]key.Binding{
		km.pick(ActionNext, ActionPrev, ActionFirst, ActionLast, ActionRestart),
		km.pick(ActionPrint, ActionAuto, ActionFullscreen),
		km.pick(ActionHelp, ActionQuit),
	}
	out := cols[:0]
	for _, c := range cols {
		if len(c) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// newHelpModel returns a help.Model styled like the rest of the chrome.
func newHelpModel() help.Model {
	m := help.New()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortKey = keyStyle
	m.Styles.ShortDesc = descStyle
	m.Styles.ShortSeparator = descStyle
	m.Styles.FullKey = keyStyle
	m.Styles.FullDesc = descStyle
	m.Styles.FullSeparator = descStyle
	return m
}

// RenderKeybindHelp renders the help bar, expanded to all bindings when
// full is set.
func RenderKeybindHelp(registry *KeybindRegistry, width int, full bool) string {
	m := newHelpModel()
	m.Width = width
	m.ShowAll = full
	content := m.View(NewKeyMap(registry))
	if !full {
		return content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Render(content)
}

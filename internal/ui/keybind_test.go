package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeybinds_Lookup(t *testing.T) {
	reg := DefaultKeybinds()
	tests := []struct {
		key  string
		want Action
	}{
		{"right", ActionNext},
		{" ", ActionNext},
		{"l", ActionNext},
		{"left", ActionPrev},
		{"h", ActionPrev},
		{"home", ActionFirst},
		{"end", ActionLast},
		{"p", ActionPrint},
		{"P", ActionPrint},
		{"a", ActionAuto},
		{"A", ActionAuto},
		{"r", ActionRestart},
		{"R", ActionRestart},
		{"f", ActionFullscreen},
		{"F", ActionFullscreen},
		{"?", ActionHelp},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
	}
	for _, tt := range tests {
		got, ok := reg.Lookup(keyMsg(tt.key))
		assert.True(t, ok, "key %q", tt.key)
		assert.Equal(t, tt.want, got, "key %q", tt.key)
	}
}

func TestDefaultKeybinds_CtrlPUnbound(t *testing.T) {
	_, ok := DefaultKeybinds().Lookup(keyMsg("ctrl+p"))
	assert.False(t, ok, "ctrl+p is left to the terminal")

	_, ok = DefaultKeybinds().Lookup(keyMsg("z"))
	assert.False(t, ok)
}

func TestKeybindRegistry_RebindReplaces(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind(ActionNext, "next", "n")
	reg.Bind(ActionNext, "next", "j")

	_, ok := reg.Lookup(keyMsg("n"))
	assert.False(t, ok)
	got, ok := reg.Lookup(keyMsg("j"))
	require.True(t, ok)
	assert.Equal(t, ActionNext, got)
}

func TestAction_Navigation(t *testing.T) {
	for _, a := range []Action{ActionNext, ActionPrev, ActionFirst, ActionLast, ActionRestart} {
		assert.True(t, a.Navigation(), "action %d", a)
	}
	for _, a := range []Action{ActionPrint, ActionAuto, ActionFullscreen, ActionHelp, ActionQuit} {
		assert.False(t, a.Navigation(), "action %d", a)
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := NewKeyMap(DefaultKeybinds())
	assert.Len(t, km.ShortHelp(), 6)
	full := km.FullHelp()
	require.Len(t, full, 3)
	assert.Len(t, full[0], 5)

	empty := NewKeyMap(nil)
	assert.Empty(t, empty.ShortHelp())
	assert.Empty(t, empty.FullHelp())
}

func TestRenderKeybindHelp(t *testing.T) {
	short := RenderKeybindHelp(DefaultKeybinds(), 200, false)
	assert.Contains(t, short, "next")
	assert.Contains(t, short, "quit")
	assert.NotContains(t, short, "fullscreen")

	full := RenderKeybindHelp(DefaultKeybinds(), 200, true)
	assert.Contains(t, full, "fullscreen")
	assert.Contains(t, full, "restart")
	assert.True(t, strings.Contains(full, "╭"), "full help is boxed")
}

// keyMsg builds the tea.KeyMsg Bubble Tea would deliver for s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

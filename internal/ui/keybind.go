package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is something a key press asks the presenter to do.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionFirst
	ActionLast
	ActionRestart
	ActionPrint
	ActionAuto
	ActionFullscreen
	ActionHelp
	ActionQuit
)

// Navigation reports whether a is dropped while a transition is running.
func (a Action) Navigation() bool {
	switch a {
	case ActionNext, ActionPrev, ActionFirst, ActionLast, ActionRestart:
		return true
	}
	return false
}

type binding struct {
	action  Action
	binding key.Binding
}

// KeybindRegistry maps key presses to actions. Bindings are matched in the
// order they were bound.
type KeybindRegistry struct {
	bindings []binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{}
}

// DefaultKeybinds returns the presenter's standard key map.
func DefaultKeybinds() *KeybindRegistry {
	r := NewKeybindRegistry()
	r.Bind(ActionNext, "next", "right", " ", "l")
	r.Bind(ActionPrev, "prev", "left", "h")
	r.Bind(ActionFirst, "first", "home")
	r.Bind(ActionLast, "last", "end")
	r.Bind(ActionRestart, "restart", "r", "R")
	r.Bind(ActionPrint, "print", "p", "P")
	r.Bind(ActionAuto, "auto", "a", "A")
	r.Bind(ActionFullscreen, "fullscreen", "f", "F")
	r.Bind(ActionHelp, "help", "?")
	r.Bind(ActionQuit, "quit", "q", "ctrl+c")
	return r
}

// Bind registers keys (tea.KeyMsg.String() format) for an action. Binding
// an action again replaces its keys.
func (r *KeybindRegistry) Bind(a Action, desc string, keys ...string) {
	b := key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey(keys), desc))
	for i := range r.bindings {
		if r.bindings[i].action == a {
			r.bindings[i].binding = b
			return
		}
	}
	r.bindings = append(r.bindings, binding{action: a, binding: b})
}

// Lookup returns the action bound to msg.
func (r *KeybindRegistry) Lookup(msg tea.KeyMsg) (Action, bool) {
	for _, b := range r.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, true
		}
	}
	return ActionNone, false
}

// Binding returns the key.Binding for an action.
func (r *KeybindRegistry) Binding(a Action) (key.Binding, bool) {
	for _, b := range r.bindings {
		if b.action == a {
			return b.binding, true
		}
	}
	return key.Binding{}, false
}

// helpKey is the label shown in the help bar: the first key, with space
// spelled out.
func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	k := keys[0]
	switch k {
	case " ":
		return "space"
	case "right":
		return "→/space"
	case "left":
		return "←"
	}
	return k
}

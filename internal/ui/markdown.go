package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

// markdownRenderer renders slide blocks with glamour, caching the output per
// width since the same blocks are redrawn every frame.
type markdownRenderer struct {
	style string
	width int
	tr    *glamour.TermRenderer
	cache map[string]string
}

func newMarkdownRenderer(style string) *markdownRenderer {
	return &markdownRenderer{style: style, cache: make(map[string]string)}
}

// SetWidth drops the cache when the wrap width changes.
func (m *markdownRenderer) SetWidth(width int) {
	if width == m.width && m.tr != nil {
		return
	}
	m.width = width
	m.tr = nil
	m.cache = make(map[string]string)
}

func (m *markdownRenderer) renderer() *glamour.TermRenderer {
	if m.tr != nil {
		return m.tr
	}
	style := glamour.WithStandardStyle(m.style)
	if m.style == "auto" {
		style = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(m.width))
	if err != nil {
		return nil
	}
	m.tr = tr
	return tr
}

// Render returns src as styled terminal text. An unknown style or a render
// failure falls back to the raw markdown.
func (m *markdownRenderer) Render(src string) string {
	if out, ok := m.cache[src]; ok {
		return out
	}
	out := src
	if tr := m.renderer(); tr != nil {
		if r, err := tr.Render(src); err == nil {
			out = trimBlankLines(r)
		}
	}
	m.cache[src] = out
	return out
}

// trimBlankLines drops leading and trailing whitespace-only lines glamour
// adds around every document.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(ansi.Strip(lines[start])) == "" {
		start++
	}
	for end > start && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

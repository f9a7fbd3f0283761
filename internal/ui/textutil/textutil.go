// Package textutil provides width-aware helpers for laying out styled text
// on a fixed-width terminal line.
package textutil

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI
// escape sequences.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens plain text to at most maxWidth columns, ending it with
// an ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= runewidth.StringWidth(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Placed is a styled string anchored at column X.
type Placed struct {
	X    int
	Text string
}

// Compose lays out segments left to right on a single line of width
// columns. Segments are sorted by X; a segment that would overlap the
// previous one or run past width is dropped.
func Compose(width int, segs ...Placed) string {
	sorted := append([]Placed(nil), segs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var b strings.Builder
	col := 0
	for _, s := range sorted {
		w := Width(s.Text)
		if s.X < col || s.X+w > width {
			continue
		}
		b.WriteString(strings.Repeat(" ", s.X-col))
		b.WriteString(s.Text)
		col = s.X + w
	}
	if col < width {
		b.WriteString(strings.Repeat(" ", width-col))
	}
	return b.String()
}

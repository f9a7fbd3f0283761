package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the presenter
const (
	ColorAccent    = "86"  // Cyan/green - progress fill, active dot
	ColorHighlight = "205" // Magenta - nav buttons, help keys
	ColorMuted     = "241" // Gray - disabled buttons, hints
	ColorText      = "252" // Light gray - counter text
	ColorDim       = "238" // Dark gray - inactive dots, page breaks
	ColorWarning   = "208" // Orange - auto-advance status
)

// Styles contains the shared chrome styles.
var Styles = struct {
	Button         lipgloss.Style // Enabled prev/next affordance
	ButtonDisabled lipgloss.Style // Disabled prev/next affordance
	Dot            lipgloss.Style // Inactive indicator dot
	DotActive      lipgloss.Style // Dot of the current slide
	Counter        lipgloss.Style // "4 / 19"
	SlideTitle     lipgloss.Style // Current slide title in the footer
	Status         lipgloss.Style // Auto-advance status
	Hint           lipgloss.Style // Help text
	PageBreak      lipgloss.Style // Rule between slides in print mode
	Heading        lipgloss.Style // Slide title above the body
	DeckTitle      lipgloss.Style // Print-mode document header
}{
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Dot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	DotActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Counter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	SlideTitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	PageBreak: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Heading: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		PaddingLeft(2).
		MarginBottom(1),
	DeckTitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		PaddingLeft(2),
}

// Footer glyphs.
const (
	glyphPrev      = "‹ Prev"
	glyphNext      = "Next ›"
	glyphDot       = "○"
	glyphDotActive = "●"
	glyphPageBreak = "─"
)

package ui

// AppMode is what the presenter is showing: one slide at a time, or the
// whole deck as a scrollable document.
type AppMode int

const (
	ModeSlides AppMode = iota
	ModePrint
)

func (m AppMode) String() string {
	switch m {
	case ModeSlides:
		return "Slides"
	case ModePrint:
		return "Print"
	default:
		return "Unknown"
	}
}

// Mode reports the current presentation mode.
func (m *AppModel) Mode() AppMode {
	if m.Stage.PrintMode() {
		return ModePrint
	}
	return ModeSlides
}

package deck

import "time"

// Renderer is the display surface the controller drives.
// Slide and dot indexes are 1-based.
type Renderer interface {
	// SlideCount returns the number of slide surfaces. Read once by New.
	SlideCount() int

	// SetSlideActive shows or hides a slide surface.
	SetSlideActive(index int, active bool)

	// ResetEntryAnimation puts the slide's animatable children back into
	// their pre-animation state (hidden, offset).
	ResetEntryAnimation(index int)

	// ReleaseEntryAnimation lets the slide's animatable children run their
	// entry animation.
	ReleaseEntryAnimation(index int)

	RenderCounter(current, total int)
	RenderProgress(ratio float64)
	SetNavEnabled(prev, next bool)
	SetDotActive(index int, active bool)
	SetPrintMode(on bool)
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the timer. Returns false if it had already been stopped
	// or, for one-shot timers, had already fired.
	Stop() bool
}

// Scheduler defers callbacks. Implementations must invoke callbacks on the
// same goroutine that drives the controller.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
	Every(d time.Duration, f func()) Timer
}

// Observer receives controller lifecycle notifications.
type Observer interface {
	SlideChanged(from, to int)
	AutoAdvanceChanged(running bool, interval time.Duration)
	PrintModeChanged(on bool)
}

// NoopObserver implements Observer with no-ops. Embed it to implement a subset.
type NoopObserver struct{}

func (NoopObserver) SlideChanged(from, to int)              {}
func (NoopObserver) AutoAdvanceChanged(bool, time.Duration) {}
func (NoopObserver) PrintModeChanged(on bool)               {}

var _ Observer = NoopObserver{}

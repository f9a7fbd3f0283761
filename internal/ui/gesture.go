package ui

// Swipe is the result of classifying a press/release pair.
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeNext       // dragged toward the left
	SwipePrev       // dragged toward the right
)

// swipeTracker recognizes horizontal drags between a left-button press and
// its release. Coordinates are terminal cells.
type swipeTracker struct {
	threshold   int // minimum horizontal travel
	maxVertical int // maximum vertical travel
	active      bool
	startX      int
	startY      int
}

func newSwipeTracker(threshold, maxVertical int) *swipeTracker {
	return &swipeTracker{threshold: threshold, maxVertical: maxVertical}
}

// Start records the press position.
func (s *swipeTracker) Start(x, y int) {
	s.active = true
	s.startX, s.startY = x, y
}

// Active reports whether a press is being tracked.
func (s *swipeTracker) Active() bool { return s.active }

// End classifies the gesture ending at (x, y) and resets the tracker.
// moved reports whether the pointer left the press cell at all, which
// tells a drag apart from a click.
func (s *swipeTracker) End(x, y int) (swipe Swipe, moved bool) {
	if !s.active {
		return SwipeNone, false
	}
	s.active = false
	dx := s.startX - x
	dy := s.startY - y
	moved = dx != 0 || dy != 0
	if abs(dx) <= s.threshold || abs(dy) >= s.maxVertical {
		return SwipeNone, moved
	}
	if dx > 0 {
		return SwipeNext, moved
	}
	return SwipePrev, moved
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

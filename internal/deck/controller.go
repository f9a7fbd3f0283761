package deck

import (
	"log/slog"
	"time"
)

// State is the navigation state of a Controller.
type State int

const (
	StateIdle State = iota
	StateTransitioning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateTransitioning:
		return "Transitioning"
	default:
		return "Unknown"
	}
}

// Controller owns the current slide index and drives a Renderer.
// It is not safe for concurrent use; all calls, including scheduled
// callbacks, must happen on one goroutine.
type Controller struct {
	renderer  Renderer
	scheduler Scheduler
	observer  Observer
	log       *slog.Logger
	timing    Timing

	current   int
	total     int
	animating bool
	printMode bool

	autoTimer    Timer
	autoInterval time.Duration
}

// New creates a controller positioned on slide 1. The slide count is read
// from r once and fixed for the controller's lifetime.
func New(r Renderer, s Scheduler, opts ...Option) *Controller {
	c := &Controller{
		renderer:  r,
		scheduler: s,
		observer:  NoopObserver{},
		log:       slog.New(slog.DiscardHandler),
		timing:    DefaultTiming(),
		current:   1,
		total:     r.SlideCount(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start performs the initial render: slide 1 active, every other surface
// inactive, display refreshed, entry animation started for slide 1.
func (c *Controller) Start() {
	c.applyActiveSlides()
	c.RefreshDisplay()
	c.TriggerEntryAnimation()
	c.observer.SlideChanged(0, c.current)
}

// Current returns the 1-based index of the active slide.
func (c *Controller) Current() int { return c.current }

// Total returns the number of slides.
func (c *Controller) Total() int { return c.total }

// Animating reports whether a transition is in flight.
func (c *Controller) Animating() bool { return c.animating }

// State returns Idle or Transitioning.
func (c *Controller) State() State {
	if c.animating {
		return StateTransitioning
	}
	return StateIdle
}

// PrintMode reports whether print mode is on.
func (c *Controller) PrintMode() bool { return c.printMode }

// AutoAdvancing reports whether the auto-advance timer is running.
func (c *Controller) AutoAdvancing() bool { return c.autoTimer != nil }

// AutoAdvanceInterval returns the interval of the running auto-advance
// timer, or zero when stopped.
func (c *Controller) AutoAdvanceInterval() time.Duration {
	if c.autoTimer == nil {
		return 0
	}
	return c.autoInterval
}

// GoTo navigates to slide n. It returns false without side effects when n is
// the current slide, out of range, or a transition is in flight.
func (c *Controller) GoTo(n int) bool {
	switch {
	case n == c.current:
		return false
	case c.animating:
		c.log.Debug("navigation dropped during transition", "target", n, "current", c.current)
		return false
	case n < 1 || n > c.total:
		c.log.Debug("navigation target out of range", "target", n, "total", c.total)
		return false
	}

	c.animating = true
	from := c.current
	c.scheduler.AfterFunc(c.timing.SwapDelay, func() {
		c.swap(from, n)
		c.scheduler.AfterFunc(c.timing.SettleDelay, func() {
			c.animating = false
		})
	})
	return true
}

func (c *Controller) swap(from, to int) {
	if !c.printMode {
		c.renderer.SetSlideActive(from, false)
	}
	c.current = to
	if !c.printMode {
		c.renderer.SetSlideActive(to, true)
	}
	c.RefreshDisplay()
	c.TriggerEntryAnimation()
	c.log.Debug("slide changed", "from", from, "to", to)
	c.observer.SlideChanged(from, to)
}

// Next advances one slide. No-op on the last slide.
func (c *Controller) Next() bool {
	if c.current >= c.total {
		return false
	}
	return c.GoTo(c.current + 1)
}

// Prev goes back one slide. No-op on the first slide.
func (c *Controller) Prev() bool {
	if c.current <= 1 {
		return false
	}
	return c.GoTo(c.current - 1)
}

// First jumps to slide 1.
func (c *Controller) First() bool { return c.GoTo(1) }

// Last jumps to the final slide.
func (c *Controller) Last() bool { return c.GoTo(c.total) }

// RefreshDisplay re-renders the counter, progress, nav buttons and dots from
// the current index. It is idempotent and never changes navigation state.
func (c *Controller) RefreshDisplay() {
	c.renderer.RenderCounter(c.current, c.total)
	c.renderer.RenderProgress(c.progress())
	c.renderer.SetNavEnabled(c.current > 1, c.current < c.total)
	for i := 1; i <= c.total; i++ {
		c.renderer.SetDotActive(i, i == c.current)
	}
}

func (c *Controller) progress() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.current) / float64(c.total)
}

// TriggerEntryAnimation replays the active slide's entry animation.
func (c *Controller) TriggerEntryAnimation() {
	slide := c.current
	c.renderer.ResetEntryAnimation(slide)
	c.scheduler.AfterFunc(c.timing.AnimationDelay, func() {
		c.renderer.ReleaseEntryAnimation(slide)
	})
}

// StartAutoAdvance starts a repeating timer that advances one slide per
// tick, wrapping from the last slide to the first. Ticks that land during a
// transition are skipped. A running timer is replaced.
func (c *Controller) StartAutoAdvance(interval time.Duration) {
	c.stopTimer()
	if interval <= 0 {
		interval = DefaultAutoAdvanceInterval
	}
	c.autoInterval = interval
	c.autoTimer = c.scheduler.Every(interval, c.autoAdvanceTick)
	c.log.Info("auto-advance started", "interval", interval)
	c.observer.AutoAdvanceChanged(true, interval)
}

func (c *Controller) autoAdvanceTick() {
	if c.animating {
		return
	}
	if c.current < c.total {
		c.Next()
		return
	}
	c.GoTo(1)
}

// StopAutoAdvance cancels the auto-advance timer. No-op when not running.
func (c *Controller) StopAutoAdvance() {
	if !c.stopTimer() {
		return
	}
	c.log.Info("auto-advance stopped")
	c.observer.AutoAdvanceChanged(false, 0)
}

func (c *Controller) stopTimer() bool {
	if c.autoTimer == nil {
		return false
	}
	c.autoTimer.Stop()
	c.autoTimer = nil
	c.autoInterval = 0
	return true
}

// ToggleAutoAdvance stops a running timer or starts one with interval.
// It returns whether auto-advance is running afterwards.
func (c *Controller) ToggleAutoAdvance(interval time.Duration) bool {
	if c.AutoAdvancing() {
		c.StopAutoAdvance()
		return false
	}
	c.StartAutoAdvance(interval)
	return true
}

// TogglePrintMode flips print mode. Entering it activates every slide
// surface; leaving it restores the single active slide.
func (c *Controller) TogglePrintMode() {
	c.printMode = !c.printMode
	c.renderer.SetPrintMode(c.printMode)
	c.applyActiveSlides()
	c.log.Info("print mode toggled", "on", c.printMode)
	c.observer.PrintModeChanged(c.printMode)
}

func (c *Controller) applyActiveSlides() {
	for i := 1; i <= c.total; i++ {
		c.renderer.SetSlideActive(i, c.printMode || i == c.current)
	}
}

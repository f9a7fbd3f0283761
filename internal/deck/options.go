package deck

import (
	"log/slog"
	"time"
)

const (
	// DefaultSwapDelay is the pause between accepting a navigation request
	// and swapping the active surface.
	DefaultSwapDelay = 50 * time.Millisecond
	// DefaultSettleDelay is how long the controller stays Transitioning
	// after the swap.
	DefaultSettleDelay = 500 * time.Millisecond
	// DefaultAnimationDelay is the gap between resetting and releasing
	// entry animations.
	DefaultAnimationDelay = 100 * time.Millisecond
	// DefaultAutoAdvanceInterval is used by StartAutoAdvance when given a
	// non-positive interval.
	DefaultAutoAdvanceInterval = 10 * time.Second
)

// Timing holds the transition delays. Zero fields fall back to defaults.
type Timing struct {
	SwapDelay      time.Duration
	SettleDelay    time.Duration
	AnimationDelay time.Duration
}

// DefaultTiming returns the stock transition delays.
func DefaultTiming() Timing {
	return Timing{
		SwapDelay:      DefaultSwapDelay,
		SettleDelay:    DefaultSettleDelay,
		AnimationDelay: DefaultAnimationDelay,
	}
}

func (t Timing) withDefaults() Timing {
	d := DefaultTiming()
	if t.SwapDelay > 0 {
		d.SwapDelay = t.SwapDelay
	}
	if t.SettleDelay > 0 {
		d.SettleDelay = t.SettleDelay
	}
	if t.AnimationDelay > 0 {
		d.AnimationDelay = t.AnimationDelay
	}
	return d
}

// Option configures a Controller.
type Option func(*Controller)

// WithTiming overrides the transition delays.
func WithTiming(t Timing) Option {
	return func(c *Controller) {
		c.timing = t.withDefaults()
	}
}

// WithObserver registers an observer. Nil is ignored.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithLogger sets the logger used for debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Package decktest provides in-memory fakes for exercising a deck.Controller
// without a terminal or wall-clock timers.
package decktest

import (
	"sort"
	"time"

	"sentradeck/internal/deck"
)

// Scheduler is a manual-clock deck.Scheduler. Callbacks only run from
// Advance, on the calling goroutine.
type Scheduler struct {
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	s        *Scheduler
	seq      int
	due      time.Duration
	interval time.Duration
	f        func()
	stopped  bool
}

var _ deck.Scheduler = (*Scheduler)(nil)

// NewScheduler returns a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc implements deck.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) deck.Timer {
	return s.add(d, 0, f)
}

// Every implements deck.Scheduler.
func (s *Scheduler) Every(d time.Duration, f func()) deck.Timer {
	return s.add(d, d, f)
}

func (s *Scheduler) add(d, interval time.Duration, f func()) *timer {
	s.seq++
	t := &timer{s: s, seq: s.seq, due: s.now + d, interval: interval, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Stop implements deck.Timer.
func (t *timer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}

func (s *Scheduler) remove(t *timer) {
	for i, o := range s.timers {
		if o == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Now returns the elapsed fake time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int { return len(s.timers) }

// Advance moves the clock forward by d, firing every timer that comes due,
// including ones scheduled by callbacks during the advance.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		t := s.next()
		if t == nil || t.due > target {
			break
		}
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			t.stopped = true
			s.remove(t)
		}
		t.f()
	}
	s.now = target
}

// Settle advances the clock until no one-shot timers remain, ignoring
// repeating timers. Useful to let a transition finish.
func (s *Scheduler) Settle() {
	for {
		var due time.Duration
		found := false
		for _, t := range s.timers {
			if t.interval == 0 && (!found || t.due < due) {
				due, found = t.due, true
			}
		}
		if !found {
			return
		}
		s.Advance(due - s.now)
	}
}

func (s *Scheduler) next() *timer {
	if len(s.timers) == 0 {
		return nil
	}
	sorted := make([]*timer, len(s.timers))
	copy(sorted, s.timers)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].due != sorted[j].due {
			return sorted[i].due < sorted[j].due
		}
		return sorted[i].seq < sorted[j].seq
	})
	return sorted[0]
}

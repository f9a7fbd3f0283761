package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sentradeck/internal/deck"
)

// timerMsg is delivered when a scheduled callback comes due.
type timerMsg struct {
	id int
}

// cmdScheduler implements deck.Scheduler on top of tea.Tick. Scheduling
// queues a command; the resulting timerMsg comes back through Update, so
// callbacks always run on the Bubble Tea event loop.
type cmdScheduler struct {
	now     func() time.Time
	nextID  int
	timers  map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	s     *cmdScheduler
	id    int
	d     time.Duration
	due   time.Time
	every bool
	f     func()
}

// Ensure cmdScheduler implements deck.Scheduler.
var _ deck.Scheduler = (*cmdScheduler)(nil)

func newCmdScheduler() *cmdScheduler {
	return &cmdScheduler{
		now:    time.Now,
		timers: make(map[int]*teaTimer),
	}
}

// AfterFunc implements deck.Scheduler.
func (s *cmdScheduler) AfterFunc(d time.Duration, f func()) deck.Timer {
	return s.add(d, false, f)
}

// Every implements deck.Scheduler.
func (s *cmdScheduler) Every(d time.Duration, f func()) deck.Timer {
	return s.add(d, true, f)
}

func (s *cmdScheduler) add(d time.Duration, every bool, f func()) *teaTimer {
	s.nextID++
	t := &teaTimer{s: s, id: s.nextID, d: d, every: every, f: f}
	s.timers[t.id] = t
	s.arm(t)
	return t
}

func (s *cmdScheduler) arm(t *teaTimer) {
	id := t.id
	t.due = s.now().Add(t.d)
	s.pending = append(s.pending, tea.Tick(t.d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

// Stop implements deck.Timer. A tick already in flight for a stopped timer
// is ignored when it arrives.
func (t *teaTimer) Stop() bool {
	if _, ok := t.s.timers[t.id]; !ok {
		return false
	}
	delete(t.s.timers, t.id)
	return true
}

// Fire runs the callback for id. Repeating timers are re-armed first so the
// callback may stop them.
func (s *cmdScheduler) Fire(id int) {
	t, ok := s.timers[id]
	if !ok {
		return
	}
	if t.every {
		s.arm(t)
	} else {
		delete(s.timers, id)
	}
	t.f()
}

// Drain returns the commands queued since the last call, or nil.
func (s *cmdScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Len returns the number of live timers.
func (s *cmdScheduler) Len() int {
	return len(s.timers)
}

package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// animationFPS drives entry animation frames.
	animationFPS = 60
	// entryOffset is how many rows below its resting place a block starts.
	entryOffset = 3.0
	// entryStagger is the number of frames between consecutive blocks
	// starting to move.
	entryStagger = 6
	// settleEpsilon is the distance and speed below which a block snaps home.
	settleEpsilon = 0.05
)

var frameInterval = time.Second / animationFPS

// frameMsg advances running entry animations by one frame.
type frameMsg struct{}

type animPhase int

const (
	phaseShown   animPhase = iota // at rest, everything visible
	phaseHidden                   // reset, waiting for release
	phasePlaying                  // released, blocks moving into place
)

type blockAnim struct {
	offset   float64
	velocity float64
	visible  bool
}

// entryAnimation is the fade-up of one slide's blocks: every block starts
// hidden and offset, then each in turn springs up into place.
type entryAnimation struct {
	spring harmonica.Spring
	phase  animPhase
	frame  int
	blocks []blockAnim
}

func newEntryAnimation() entryAnimation {
	return entryAnimation{
		spring: harmonica.NewSpring(harmonica.FPS(animationFPS), 8.0, 0.9),
		phase:  phaseShown,
	}
}

// Reset hides n blocks at their starting offset.
func (a *entryAnimation) Reset(n int) {
	a.phase = phaseHidden
	a.frame = 0
	a.blocks = make([]blockAnim, n)
	for i := range a.blocks {
		a.blocks[i] = blockAnim{offset: entryOffset}
	}
}

// Release starts the animation. No-op unless Reset was called.
func (a *entryAnimation) Release() {
	if a.phase != phaseHidden {
		return
	}
	a.phase = phasePlaying
	a.frame = 0
}

// Playing reports whether frames are still needed.
func (a *entryAnimation) Playing() bool {
	return a.phase == phasePlaying
}

// Step advances one frame.
func (a *entryAnimation) Step() {
	if a.phase != phasePlaying {
		return
	}
	a.frame++
	done := true
	for i := range a.blocks {
		b := &a.blocks[i]
		if a.frame < i*entryStagger {
			done = false
			continue
		}
		b.visible = true
		b.offset, b.velocity = a.spring.Update(b.offset, b.velocity, 0)
		if math.Abs(b.offset) < settleEpsilon && math.Abs(b.velocity) < settleEpsilon {
			b.offset, b.velocity = 0, 0
			continue
		}
		done = false
	}
	if done {
		a.phase = phaseShown
	}
}

// Block returns how block i should be drawn: whether it is visible and how
// many rows it sits below its resting place.
func (a *entryAnimation) Block(i int) (visible bool, rows int) {
	switch a.phase {
	case phaseShown:
		return true, 0
	case phaseHidden:
		return false, 0
	}
	if i < 0 || i >= len(a.blocks) {
		return true, 0
	}
	b := a.blocks[i]
	if !b.visible {
		return false, 0
	}
	return true, int(math.Round(math.Max(b.offset, 0)))
}

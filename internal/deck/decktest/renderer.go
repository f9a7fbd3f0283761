package decktest

import "sentradeck/internal/deck"

// AnimState is the entry-animation state of a recorded slide.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimReset
	AnimReleased
)

// Renderer records everything a controller pushes to it.
type Renderer struct {
	// Active, Dots and Anim are indexed from 0 for slide 1.
	Active []bool
	Dots   []bool
	Anim   []AnimState

	// Resets and Releases list slide indexes in call order.
	Resets   []int
	Releases []int

	Current   int
	Total     int
	Progress  float64
	PrevOn    bool
	NextOn    bool
	Print     bool
	Refreshes int
}

var _ deck.Renderer = (*Renderer)(nil)

// NewRenderer returns a renderer with n slide surfaces, all inactive.
func NewRenderer(n int) *Renderer {
	return &Renderer{
		Active: make([]bool, n),
		Dots:   make([]bool, n),
		Anim:   make([]AnimState, n),
	}
}

func (r *Renderer) SlideCount() int { return len(r.Active) }

func (r *Renderer) SetSlideActive(index int, active bool) { r.Active[index-1] = active }

func (r *Renderer) ResetEntryAnimation(index int) {
	r.Anim[index-1] = AnimReset
	r.Resets = append(r.Resets, index)
}

func (r *Renderer) ReleaseEntryAnimation(index int) {
	r.Anim[index-1] = AnimReleased
	r.Releases = append(r.Releases, index)
}

func (r *Renderer) RenderCounter(current, total int) {
	r.Current, r.Total = current, total
	r.Refreshes++
}

func (r *Renderer) RenderProgress(ratio float64)        { r.Progress = ratio }
func (r *Renderer) SetNavEnabled(prev, next bool)       { r.PrevOn, r.NextOn = prev, next }
func (r *Renderer) SetDotActive(index int, active bool) { r.Dots[index-1] = active }
func (r *Renderer) SetPrintMode(on bool)                { r.Print = on }

// ActiveSlides returns the 1-based indexes of active surfaces.
func (r *Renderer) ActiveSlides() []int {
	var out []int
	for i, a := range r.Active {
		if a {
			out = append(out, i+1)
		}
	}
	return out
}

// ActiveDots returns the 1-based indexes of active dots.
func (r *Renderer) ActiveDots() []int {
	var out []int
	for i, a := range r.Dots {
		if a {
			out = append(out, i+1)
		}
	}
	return out
}

package ui

import (
	"fmt"
	"strings"

	"sentradeck/internal/ui/textutil"
)

type zoneKind int

const (
	zoneNone zoneKind = iota
	zonePrev
	zoneNext
	zoneDot
)

// zone is a clickable span [x0, x1) on the footer row.
type zone struct {
	kind  zoneKind
	index int // slide index for dots
	x0    int
	x1    int
}

func (z zone) contains(x int) bool {
	return z.kind != zoneNone && x >= z.x0 && x < z.x1
}

const (
	footerMargin = 1
	dotSpacing   = 2
	footerGap    = 2
)

// footerLayout positions the footer controls for a given width.
//
//	 ‹ Prev ● ○ ○ ○ Next ›  Slide title…      auto 8s  1 / 4
type footerLayout struct {
	width  int
	prev   zone
	next   zone
	dots   []zone // empty when they do not fit
	titleX int
	titleW int
	rightX int // start of status and counter
}

// layoutFooter lays out controls for total slides. right is the width of
// the right-aligned status and counter text. Dots are dropped when the
// line is too narrow to hold them.
func layoutFooter(width, total, right int) footerLayout {
	l := footerLayout{width: width}
	prevW := textutil.Width(glyphPrev)
	nextW := textutil.Width(glyphNext)
	l.rightX = width - footerMargin - right
	if l.rightX < 0 {
		l.rightX = 0
	}

	x := footerMargin
	l.prev = zone{kind: zonePrev, x0: x, x1: x + prevW}
	x = l.prev.x1 + 1

	dotsW := total*dotSpacing - 1
	if total > 0 && x+dotsW+1+nextW <= l.rightX {
		l.dots = make([]zone, total)
		for i := range l.dots {
			dx := x + i*dotSpacing
			l.dots[i] = zone{kind: zoneDot, index: i + 1, x0: dx, x1: dx + 1}
		}
		x += dotsW + 1
	}

	l.next = zone{kind: zoneNext, x0: x, x1: x + nextW}
	l.titleX = l.next.x1 + footerGap
	l.titleW = l.rightX - footerGap - l.titleX
	if l.titleW < 0 {
		l.titleW = 0
	}
	return l
}

// HitTest returns the zone under column x.
func (l footerLayout) HitTest(x int) zone {
	if l.prev.contains(x) {
		return l.prev
	}
	if l.next.contains(x) {
		return l.next
	}
	for _, d := range l.dots {
		if d.contains(x) {
			return d
		}
	}
	return zone{}
}

// footerState is what the footer displays.
type footerState struct {
	current int
	total   int
	prevOn  bool
	nextOn  bool
	dots    []bool
	title   string
	status  string
}

func counterText(current, total int) string {
	return fmt.Sprintf("%d / %d", current, total)
}

func (f footerState) right() string {
	counter := Styles.Counter.Render(counterText(f.current, f.total))
	if f.status == "" {
		return counter
	}
	return Styles.Status.Render(f.status) + strings.Repeat(" ", footerGap) + counter
}

// Render draws the footer line for the layout.
func (l footerLayout) Render(f footerState) string {
	button := func(glyph string, on bool) string {
		if on {
			return Styles.Button.Render(glyph)
		}
		return Styles.ButtonDisabled.Render(glyph)
	}
	segs := []textutil.Placed{
		{X: l.prev.x0, Text: button(glyphPrev, f.prevOn)},
		{X: l.next.x0, Text: button(glyphNext, f.nextOn)},
	}
	for i, d := range l.dots {
		g := Styles.Dot.Render(glyphDot)
		if i < len(f.dots) && f.dots[i] {
			g = Styles.DotActive.Render(glyphDotActive)
		}
		segs = append(segs, textutil.Placed{X: d.x0, Text: g})
	}
	if l.titleW > 0 && f.title != "" {
		segs = append(segs, textutil.Placed{
			X:    l.titleX,
			Text: Styles.SlideTitle.Render(textutil.Truncate(f.title, l.titleW)),
		})
	}
	segs = append(segs, textutil.Placed{X: l.rightX, Text: f.right()})
	return textutil.Compose(l.width, segs...)
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sentradeck/internal/deck"
	"sentradeck/internal/slides"
	"sentradeck/internal/ui/textutil"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Stage is the terminal display surface for a deck. It keeps the state the
// controller pushes into it and renders it on demand.
type Stage struct {
	deck   *slides.Deck
	active []bool
	dots   []bool
	anims  []entryAnimation

	current int
	total   int
	ratio   float64
	prevOn  bool
	nextOn  bool
	print   bool
	status  string

	width  int
	height int

	md  *markdownRenderer
	bar progress.Model
	vp  viewport.Model
}

// Ensure Stage implements deck.Renderer.
var _ deck.Renderer = (*Stage)(nil)

// NewStage creates a stage for d using the named glamour style.
func NewStage(d *slides.Deck, style string) *Stage {
	n := len(d.Slides)
	s := &Stage{
		deck:   d,
		active: make([]bool, n),
		dots:   make([]bool, n),
		anims:  make([]entryAnimation, n),
		md:     newMarkdownRenderer(style),
		bar: progress.New(
			progress.WithSolidFill(ColorAccent),
			progress.WithoutPercentage(),
		),
		vp: viewport.New(defaultWidth, defaultHeight-1),
	}
	for i := range s.anims {
		s.anims[i] = newEntryAnimation()
	}
	s.SetSize(defaultWidth, defaultHeight)
	return s
}

func (s *Stage) valid(index int) bool {
	return index >= 1 && index <= len(s.active)
}

// SlideCount implements deck.Renderer.
func (s *Stage) SlideCount() int { return len(s.deck.Slides) }

// SetSlideActive implements deck.Renderer.
func (s *Stage) SetSlideActive(index int, active bool) {
	if s.valid(index) {
		s.active[index-1] = active
	}
}

// ResetEntryAnimation implements deck.Renderer.
func (s *Stage) ResetEntryAnimation(index int) {
	if s.valid(index) {
		s.anims[index-1].Reset(len(s.deck.Slides[index-1].Blocks))
	}
}

// ReleaseEntryAnimation implements deck.Renderer.
func (s *Stage) ReleaseEntryAnimation(index int) {
	if s.valid(index) {
		s.anims[index-1].Release()
	}
}

// RenderCounter implements deck.Renderer.
func (s *Stage) RenderCounter(current, total int) {
	s.current, s.total = current, total
}

// RenderProgress implements deck.Renderer.
func (s *Stage) RenderProgress(ratio float64) { s.ratio = ratio }

// SetNavEnabled implements deck.Renderer.
func (s *Stage) SetNavEnabled(prev, next bool) { s.prevOn, s.nextOn = prev, next }

// SetDotActive implements deck.Renderer.
func (s *Stage) SetDotActive(index int, active bool) {
	if s.valid(index) {
		s.dots[index-1] = active
	}
}

// SetPrintMode implements deck.Renderer.
func (s *Stage) SetPrintMode(on bool) {
	s.print = on
	if on {
		s.vp.SetContent(s.PrintDocument())
		s.vp.GotoTop()
	}
}

// PrintMode reports whether the stage shows the whole deck.
func (s *Stage) PrintMode() bool { return s.print }

// SetStatus sets the footer status text, e.g. the auto-advance interval.
func (s *Stage) SetStatus(status string) { s.status = status }

// SetSize resizes every part of the stage.
func (s *Stage) SetSize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	s.width, s.height = width, height
	s.md.SetWidth(max(width-4, 10))
	s.bar.Width = max(width-2, 1)
	s.vp.Width = width
	s.vp.Height = max(height-1, 1)
	if s.print {
		s.vp.SetContent(s.PrintDocument())
	}
}

// Size returns the stage dimensions.
func (s *Stage) Size() (width, height int) { return s.width, s.height }

// StepAnimations advances entry animations one frame and reports whether
// any are still running.
func (s *Stage) StepAnimations() bool {
	running := false
	for i := range s.anims {
		s.anims[i].Step()
		running = running || s.anims[i].Playing()
	}
	return running
}

// Animating reports whether any entry animation needs frames.
func (s *Stage) Animating() bool {
	for i := range s.anims {
		if s.anims[i].Playing() {
			return true
		}
	}
	return false
}

// ActiveSlides returns the 1-based indexes of visible slide surfaces.
func (s *Stage) ActiveSlides() []int {
	var out []int
	for i, on := range s.active {
		if on {
			out = append(out, i+1)
		}
	}
	return out
}

// ProgressView renders the progress bar line.
func (s *Stage) ProgressView() string {
	return " " + s.bar.ViewAs(s.ratio)
}

// SlideView renders the active slide clipped to height rows.
func (s *Stage) SlideView(height int) string {
	content := ""
	for i, on := range s.active {
		if on {
			content = s.renderSlide(i, true)
			break
		}
	}
	return lipgloss.NewStyle().
		Width(s.width).
		MaxWidth(s.width).
		Height(height).
		MaxHeight(height).
		Render(content)
}

// renderSlide renders slide i (0-based). With animate set, blocks follow
// their entry animation; hidden blocks keep their height so the layout
// does not jump when they appear. Otherwise the body renders as one
// document.
func (s *Stage) renderSlide(i int, animate bool) string {
	sl := s.deck.Slides[i]
	var parts []string
	if sl.Title != "" {
		parts = append(parts, Styles.Heading.Render(sl.Title))
	}
	if !animate {
		if body := sl.Markdown(); body != "" {
			parts = append(parts, s.md.Render(body))
		}
		return strings.Join(parts, "\n\n")
	}
	for b, block := range sl.Blocks {
		out := s.md.Render(block)
		visible, rows := s.anims[i].Block(b)
		if !visible {
			out = strings.Repeat("\n", lipgloss.Height(out)-1)
		} else if rows > 0 {
			out = strings.Repeat("\n", rows) + out
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n\n")
}

// PrintDocument renders every slide in order, separated by page breaks.
func (s *Stage) PrintDocument() string {
	var b strings.Builder
	if s.deck.Title != "" {
		header := s.deck.Title
		if s.deck.Author != "" {
			header += " · " + s.deck.Author
		}
		b.WriteString(Styles.DeckTitle.Render(header))
		b.WriteString("\n\n")
	}
	rule := Styles.PageBreak.Render(strings.Repeat(glyphPageBreak, s.width))
	for i := range s.deck.Slides {
		if i > 0 {
			b.WriteString("\n\n")
			b.WriteString(rule)
			b.WriteString("\n\n")
		}
		b.WriteString(s.renderSlide(i, false))
	}
	return b.String()
}

// PrintView renders the scrollable print document and its status line.
func (s *Stage) PrintView() string {
	hint := Styles.Hint.Render(" print mode · ↑/↓ scroll · p to leave")
	pct := Styles.Counter.Render(fmt.Sprintf("%3.0f%%", s.vp.ScrollPercent()*100))
	line := textutil.Compose(s.width,
		textutil.Placed{X: 0, Text: hint},
		textutil.Placed{X: s.width - textutil.Width(pct) - footerMargin, Text: pct},
	)
	return s.vp.View() + "\n" + line
}

// UpdatePrintView forwards scroll input to the print viewport.
func (s *Stage) UpdatePrintView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd
}

// PrintOffset returns the print viewport's scroll offset.
func (s *Stage) PrintOffset() int { return s.vp.YOffset }

func (s *Stage) footer() (footerLayout, footerState) {
	f := footerState{
		current: s.current,
		total:   s.total,
		prevOn:  s.prevOn,
		nextOn:  s.nextOn,
		dots:    s.dots,
		status:  s.status,
	}
	if s.valid(s.current) {
		f.title = s.deck.Slides[s.current-1].Title
	}
	return layoutFooter(s.width, len(s.dots), textutil.Width(f.right())), f
}

// FooterView renders the navigation footer.
func (s *Stage) FooterView() string {
	l, f := s.footer()
	return l.Render(f)
}

// FooterHit returns the footer control under column x.
func (s *Stage) FooterHit(x int) zone {
	l, _ := s.footer()
	return l.HitTest(x)
}

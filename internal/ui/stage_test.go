package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_IgnoresOutOfRangeIndexes(t *testing.T) {
	s := NewStage(testDeck(3), "notty")
	require.Equal(t, 3, s.SlideCount())

	s.SetSlideActive(0, true)
	s.SetSlideActive(4, true)
	s.SetDotActive(-1, true)
	s.ResetEntryAnimation(9)
	s.ReleaseEntryAnimation(9)

	assert.Empty(t, s.ActiveSlides())
	assert.Equal(t, []bool{false, false, false}, s.dots)
}

func TestStage_HiddenBlocksKeepTheirHeight(t *testing.T) {
	d := testDeck(1)
	d.Slides[0].Blocks = []string{"first line\nsecond line", "after"}
	s := NewStage(d, "notty")
	s.SetSlideActive(1, true)

	shown := s.renderSlide(0, true)
	s.ResetEntryAnimation(1)
	hidden := s.renderSlide(0, true)

	assert.Equal(t, lipgloss.Height(shown), lipgloss.Height(hidden))
	assert.NotContains(t, hidden, "first line")
	assert.Contains(t, ansi.Strip(shown), "second line")
}

func TestStage_EntryAnimationRevealsBlocks(t *testing.T) {
	d := testDeck(1)
	d.Slides[0].Blocks = []string{"alpha", "beta", "gamma"}
	s := NewStage(d, "notty")
	s.SetSlideActive(1, true)
	s.ResetEntryAnimation(1)
	s.ReleaseEntryAnimation(1)

	view := ansi.Strip(s.SlideView(20))
	assert.NotContains(t, view, "gamma")

	for i := 0; s.StepAnimations(); i++ {
		require.Less(t, i, 10000)
	}
	view = ansi.Strip(s.SlideView(20))
	for _, w := range []string{"alpha", "beta", "gamma"} {
		assert.Contains(t, view, w)
	}
}

func TestStage_SlideViewIsClippedToHeight(t *testing.T) {
	d := testDeck(1)
	d.Slides[0].Blocks = []string{strings.Repeat("line\n\n", 50)}
	s := NewStage(d, "notty")
	s.SetSlideActive(1, true)

	assert.Equal(t, 7, lipgloss.Height(s.SlideView(7)))
}

func TestStage_PrintModeScrolls(t *testing.T) {
	s := NewStage(testDeck(8), "notty")
	s.SetSize(40, 6)
	s.SetPrintMode(true)
	require.True(t, s.PrintMode())

	s.UpdatePrintView(keyMsg("down"))
	assert.Equal(t, 1, s.PrintOffset())

	view := ansi.Strip(s.PrintView())
	assert.Equal(t, 6, lipgloss.Height(view))
	assert.Contains(t, view, "print mode")
}

func TestStage_PrintDocumentIgnoresEntryAnimation(t *testing.T) {
	d := testDeck(2)
	d.Slides[0].Blocks = []string{"first block", "- item one\n- item two"}
	s := NewStage(d, "notty")
	s.SetSize(60, 10)
	s.ResetEntryAnimation(1)

	doc := ansi.Strip(s.PrintDocument())
	assert.Contains(t, doc, "first block")
	assert.Contains(t, doc, "item two")
	assert.Contains(t, doc, "Body of slide 2")
}

func TestStage_FooterReflectsRendererCalls(t *testing.T) {
	s := NewStage(testDeck(4), "notty")
	s.RenderCounter(2, 4)
	s.SetNavEnabled(true, true)
	s.SetDotActive(2, true)
	s.RenderProgress(0.5)

	footer := ansi.Strip(s.FooterView())
	assert.Contains(t, footer, "‹ Prev ○ ● ○ ○ Next ›")
	assert.Contains(t, footer, "Slide 2")
	assert.Contains(t, footer, "2 / 4")

	assert.Equal(t, zoneDot, s.FooterHit(10).kind)
	assert.Equal(t, 2, s.FooterHit(10).index)
}

func TestMarkdownRenderer_FallsBackToRaw(t *testing.T) {
	m := newMarkdownRenderer("no-such-style")
	m.SetWidth(40)
	assert.Equal(t, "**bold**", m.Render("**bold**"))

	n := newMarkdownRenderer("notty")
	n.SetWidth(40)
	out := ansi.Strip(n.Render("plain words"))
	assert.Contains(t, out, "plain words")
	assert.False(t, strings.HasPrefix(out, "\n"), "leading blank lines are trimmed")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestEntryAnimation_Phases(t *testing.T) {
	a := newEntryAnimation()
	visible, rows := a.Block(0)
	assert.True(t, visible)
	assert.Zero(t, rows)

	a.Release()
	assert.False(t, a.Playing(), "release without reset is a no-op")

	a.Reset(2)
	visible, _ = a.Block(0)
	assert.False(t, visible)

	a.Release()
	require.True(t, a.Playing())
	a.Step()
	visible, rows = a.Block(0)
	assert.True(t, visible)
	assert.LessOrEqual(t, rows, int(entryOffset))
	visible, _ = a.Block(1)
	assert.False(t, visible, "later blocks are staggered")

	for i := 0; a.Playing(); i++ {
		require.Less(t, i, 10000)
		a.Step()
	}
	visible, rows = a.Block(1)
	assert.True(t, visible)
	assert.Zero(t, rows)
}

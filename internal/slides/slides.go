// Package slides loads a markdown deck into an ordered list of slides.
//
// Format:
//
//	+++
//	title = "Deck title"
//	author = "Someone"
//	+++
//
//	# First slide
//
//	A paragraph. Each blank-line separated block animates in on its own.
//
//	???
//	Speaker notes, not shown on the slide.
//
//	---
//
//	# Second slide
//
// Slides are separated by a line containing only "---". Separators and
// blank lines inside fenced code blocks are ignored.
package slides

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	slideSeparator   = "---"
	notesSeparator   = "???"
	frontMatterFence = "+++"
)

// ErrEmptyDeck is returned when a source contains no slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// Deck is a parsed presentation.
type Deck struct {
	Title  string
	Author string
	Slides []Slide
}

// Slide is one displayable unit of a deck.
type Slide struct {
	Index  int      // 1-based position in the deck
	Title  string   // text of the first ATX heading, without the #s
	Blocks []string // markdown blocks in order; these animate in on entry
	Notes  string
}

// Markdown returns the slide's body blocks joined back into markdown,
// without the title.
func (s Slide) Markdown() string {
	return strings.Join(s.Blocks, "\n\n")
}

type frontMatter struct {
	Title  string `toml:"title"`
	Author string `toml:"author"`
}

// Parse parses a markdown deck. It returns ErrEmptyDeck when no slide has a
// title or content.
func Parse(src []byte) (*Deck, error) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	d := &Deck{}
	lines, err := d.parseFrontMatter(lines)
	if err != nil {
		return nil, err
	}

	for _, chunk := range splitOutsideFences(lines, slideSeparator) {
		s := parseSlide(chunk)
		if s.Title == "" && len(s.Blocks) == 0 {
			continue
		}
		s.Index = len(d.Slides) + 1
		d.Slides = append(d.Slides, s)
	}
	if len(d.Slides) == 0 {
		return nil, ErrEmptyDeck
	}
	return d, nil
}

func (d *Deck) parseFrontMatter(lines []string) ([]string, error) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterFence {
		return lines, nil
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != frontMatterFence {
			continue
		}
		var fm frontMatter
		raw := strings.Join(lines[1:i], "\n")
		if _, err := toml.Decode(raw, &fm); err != nil {
			return nil, fmt.Errorf("front matter: %w", err)
		}
		d.Title = fm.Title
		d.Author = fm.Author
		return lines[i+1:], nil
	}
	return nil, fmt.Errorf("front matter: missing closing %q", frontMatterFence)
}

// splitOutsideFences splits lines on sep lines that are not inside a fenced
// code block.
func splitOutsideFences(lines []string, sep string) [][]string {
	var (
		out     [][]string
		cur     []string
		inFence bool
	)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isFence(trimmed) {
			inFence = !inFence
		}
		if !inFence && trimmed == sep {
			out = append(out, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	return append(out, cur)
}

func isFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

func parseSlide(lines []string) Slide {
	var s Slide
	parts := splitOutsideFences(lines, notesSeparator)
	body := parts[0]
	if len(parts) > 1 {
		var notes []string
		for _, p := range parts[1:] {
			notes = append(notes, p...)
		}
		s.Notes = strings.TrimSpace(strings.Join(notes, "\n"))
	}

	inFence := false
	for i, line := range body {
		trimmed := strings.TrimSpace(line)
		if isFence(trimmed) {
			inFence = !inFence
		}
		if inFence || !strings.HasPrefix(trimmed, "#") {
			continue
		}
		title := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		if title == "" || !strings.HasPrefix(strings.TrimLeft(trimmed, "#"), " ") {
			continue
		}
		s.Title = title
		body = append(append([]string(nil), body[:i]...), body[i+1:]...)
		break
	}
	s.Blocks = splitBlocks(body)
	return s
}

// splitBlocks groups lines into blank-line separated blocks, keeping fenced
// code blocks whole.
func splitBlocks(lines []string) []string {
	var (
		blocks  []string
		cur     []string
		inFence bool
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isFence(trimmed) {
			inFence = !inFence
		}
		if !inFence && trimmed == "" {
			flush()
			continue
		}
		cur = append(cur, strings.TrimRight(line, " \t"))
	}
	flush()
	return blocks
}

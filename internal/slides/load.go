package slides

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed demo.md
var demoDeck []byte

// Load reads and parses the deck at path. An empty path loads the built-in
// demo deck.
func Load(path string) (*Deck, error) {
	if path == "" {
		return Demo()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse deck %q: %w", path, err)
	}
	return d, nil
}

// Demo returns the built-in demo deck.
func Demo() (*Deck, error) {
	d, err := Parse(demoDeck)
	if err != nil {
		return nil, fmt.Errorf("parse demo deck: %w", err)
	}
	return d, nil
}

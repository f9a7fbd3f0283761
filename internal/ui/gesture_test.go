package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           Swipe
		moved          bool
	}{
		{"leftward past threshold", 100, 10, 40, 12, SwipeNext, true},
		{"rightward past threshold", 10, 10, 70, 10, SwipePrev, true},
		{"exactly threshold", 100, 10, 50, 10, SwipeNone, true},
		{"too short", 60, 10, 30, 10, SwipeNone, true},
		{"too vertical", 100, 150, 20, 20, SwipeNone, true},
		{"click", 5, 5, 5, 5, SwipeNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSwipeTracker(50, 100)
			s.Start(tt.x0, tt.y0)
			assert.True(t, s.Active())
			got, moved := s.End(tt.x1, tt.y1)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.moved, moved)
			assert.False(t, s.Active())
		})
	}
}

func TestSwipeTracker_EndWithoutStart(t *testing.T) {
	s := newSwipeTracker(50, 100)
	got, moved := s.End(0, 0)
	assert.Equal(t, SwipeNone, got)
	assert.False(t, moved)
}

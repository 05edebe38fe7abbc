package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollerNeverGoesAboveTop(t *testing.T) {
	var s Scroller
	s.LineUp()
	assert.Equal(t, 0, s.Offset())

	s.LineDown()
	s.LineDown()
	s.LineUp()
	assert.Equal(t, 1, s.Offset())
}

func TestScrollerClamp(t *testing.T) {
	var s Scroller
	for range 100 {
		s.LineDown()
	}

	s.Clamp(30, 10)
	assert.Equal(t, 20, s.Offset())

	// Content shorter than the window pins to the top.
	s.Clamp(5, 10)
	assert.Equal(t, 0, s.Offset())
}

func TestScrollerReset(t *testing.T) {
	var s Scroller
	s.LineDown()
	s.Reset()
	assert.Equal(t, 0, s.Offset())
}

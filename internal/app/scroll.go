package app

// Scroller is line-windowed scroll state over an arbitrary text block.
// It only tracks the first visible line; the renderer decides how many
// lines fit and clamps against the content it actually draws.
type Scroller struct {
	offset int
}

// Offset returns the first visible line index.
func (s Scroller) Offset() int { return s.offset }

// LineUp scrolls one line toward the top, never past it.
func (s *Scroller) LineUp() {
	if s.offset > 0 {
		s.offset--
	}
}

// LineDown scrolls one line toward the bottom.
func (s *Scroller) LineDown() {
	s.offset++
}

// Clamp bounds the offset so at least one content line stays visible.
func (s *Scroller) Clamp(lineCount, height int) {
	max := lineCount - height
	if max < 0 {
		max = 0
	}
	if s.offset > max {
		s.offset = max
	}
}

// Reset scrolls back to the top.
func (s *Scroller) Reset() { s.offset = 0 }

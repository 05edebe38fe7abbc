package app

// noSelection marks a cursor pointing at nothing.
const noSelection = -1

// Cursor is a wrap-around selection index over the entry list.
// It holds noSelection exactly when the list is empty.
type Cursor struct {
	pos int
}

// NewCursor returns a cursor with no selection.
func NewCursor() Cursor { return Cursor{pos: noSelection} }

// Selected returns the current index and whether anything is selected.
func (c Cursor) Selected() (int, bool) {
	if c.pos == noSelection {
		return 0, false
	}
	return c.pos, true
}

// Next advances the cursor, wrapping to the top past the last entry.
// A no-op on an empty list.
func (c *Cursor) Next(count int) {
	if count == 0 {
		return
	}
	if c.pos == noSelection || c.pos >= count-1 {
		c.pos = 0
		return
	}
	c.pos++
}

// Previous moves the cursor back, wrapping to the bottom past the first
// entry. A no-op on an empty list.
func (c *Cursor) Previous(count int) {
	if count == 0 {
		return
	}
	if c.pos == noSelection {
		c.pos = 0
		return
	}
	if c.pos == 0 {
		c.pos = count - 1
		return
	}
	c.pos--
}

// SelectFirstIfUnset selects index 0 when nothing is selected and entries
// exist.
func (c *Cursor) SelectFirstIfUnset(count int) {
	if c.pos == noSelection && count > 0 {
		c.pos = 0
	}
}

// Reconcile re-applies the selection after the entry list was replaced:
// a still-valid index is kept so a staging action that shrinks the list
// doesn't disorient the user; an out-of-bounds index resets to 0, and an
// empty list clears the selection.
func (c *Cursor) Reconcile(count int) {
	switch {
	case count == 0:
		c.pos = noSelection
	case c.pos == noSelection || c.pos >= count:
		c.pos = 0
	}
}

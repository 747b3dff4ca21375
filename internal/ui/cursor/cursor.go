// Package cursor provides list navigation primitives and a viewport cursor
// for scrollable lists.
package cursor

// Cursor tracks the scroll offset that keeps an externally owned position
// visible. The list length and viewport height are passed to methods rather
// than stored, since they can change dynamically.
type Cursor struct {
	pos    int // Current cursor position (0-indexed)
	offset int // Scroll offset (first visible item index)
	margin int // Scroll margin (items to keep visible above/below cursor)
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Jump sets the cursor to an absolute position within a list of given length.
// It clamps the cursor to valid bounds and adjusts the offset for visibility.
// If listLen is 0, the cursor is reset.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	margin := c.margin
	if margin*2 >= height {
		margin = (height - 1) / 2
	}

	// Scroll up: cursor too close to top
	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}

	// Scroll down: cursor too close to bottom
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}

	maxOffset := max(listLen-height, 0)
	c.offset = clamp(c.offset, maxOffset)
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen-1)
	end = min(start+height, listLen)
	return start, end
}

// Reset resets the cursor to position 0 and offset 0.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

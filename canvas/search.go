package canvas

// SetSearchMatches records the element ranges to highlight behind the
// document. Each range is clamped to the current element count; the slice
// is copied. Matches persist across renders until replaced.
func (c *Canvas) SetSearchMatches(matches []Range) {
	n := len(c.elements)
	c.searchMatches = c.searchMatches[:0]
	for _, m := range matches {
		if m.Start < 0 {
			m.Start = 0
		}
		if m.End > n {
			m.End = n
		}
		if m.Start >= m.End {
			continue
		}
		c.searchMatches = append(c.searchMatches, m)
	}
}

// SearchMatches returns a copy of the recorded search ranges.
func (c *Canvas) SearchMatches() []Range {
	out := make([]Range, len(c.searchMatches))
	copy(out, c.searchMatches)
	return out
}

// paintSearchMatches draws a highlight band over every positioned element
// covered by a recorded match. Runs after the content pass so the bands
// sit over glyphs the way a translucent marker would.
func (c *Canvas) paintSearchMatches() {
	for _, m := range c.searchMatches {
		for i := m.Start; i < m.End; i++ {
			pos, ok := c.positions.At(i)
			if !ok {
				continue
			}
			c.searchPainter.Paint(c.surface, pos.Rect)
		}
	}
}

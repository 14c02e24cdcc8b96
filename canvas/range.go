package canvas

// Range is a half-open index interval [Start, End) over the element
// sequence denoting the current selection. Start == End is a collapsed
// caret.
type Range struct {
	Start int
	End   int
}

// Collapsed reports whether the range denotes a caret rather than a
// selection.
func (r Range) Collapsed() bool { return r.Start == r.End }

// Contains reports whether index i falls inside the half-open interval.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// RangeManager tracks the current selection over an element sequence whose
// length is supplied by the owner. SetRange clamps its arguments so the
// invariant 0 <= Start <= End <= length always holds afterwards.
type RangeManager struct {
	r      Range
	length func() int
}

// NewRangeManager returns a RangeManager bound to a sequence-length
// source.
func NewRangeManager(length func() int) *RangeManager {
	return &RangeManager{length: length}
}

// Range returns the current selection.
func (m *RangeManager) Range() Range { return m.r }

// SetRange sets the selection, clamping into the valid interval.
func (m *RangeManager) SetRange(start, end int) {
	n := m.length()
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	if end > n {
		end = n
	}
	m.r = Range{Start: start, End: end}
}

// clamp re-applies the invariant after the element sequence shrank.
func (m *RangeManager) clamp() {
	m.SetRange(m.r.Start, m.r.End)
}

package canvas

import "image"

// Position is the absolute on-surface geometry computed for one rendered
// element: its sequence index, the row it landed on, its bounding
// rectangle spanning the full row height, the row's line height and
// baseline ascent, and whether it closes its row. The ordered position
// list is the authoritative index-to-geometry map consumed by selection,
// cursor placement and hit-testing.
type Position struct {
	Index       int
	RowIndex    int
	Rect        image.Rectangle
	LineHeight  int
	Ascent      int
	IsLastInRow bool
}

// PositionModel holds the ordered position list for the last render pass.
// The list is fully regenerated on every render; positions[i].Index == i
// for all i.
type PositionModel struct {
	positions []Position
}

// SetPositions replaces the position list.
func (m *PositionModel) SetPositions(list []Position) {
	m.positions = list
}

// Positions returns the ordered position list. Callers must not mutate the
// returned slice.
func (m *PositionModel) Positions() []Position {
	return m.positions
}

// At returns the position for index i, reporting false when i is out of
// range.
func (m *PositionModel) At(i int) (Position, bool) {
	if i < 0 || i >= len(m.positions) {
		return Position{}, false
	}
	return m.positions[i], true
}

// Len is the number of rendered element positions.
func (m *PositionModel) Len() int {
	return len(m.positions)
}

// IndexAt hit-tests a surface point against the rendered geometry and
// returns the index of the element containing it, or -1.
func (m *PositionModel) IndexAt(pt image.Point) int {
	for _, p := range m.positions {
		if pt.In(p.Rect) {
			return p.Index
		}
	}
	return -1
}

func (m *PositionModel) reset() {
	m.positions = m.positions[:0]
}

func (m *PositionModel) append(p Position) {
	m.positions = append(m.positions, p)
}

package canvas

import (
	"image"
	stdcolor "image/color"

	"github.com/zjx-git/canvas-editor/draw"
)

// Cursor paints the insertion caret. It remembers the pixels under the
// last drawn caret so Clear can restore them without a full repaint.
type Cursor struct {
	display draw.Display
	color   draw.Image
	width   int

	surface draw.Image
	pos     Position
	has     bool

	saved   draw.Image
	drawnAt image.Rectangle
	drawn   bool
}

// NewCursor returns a caret bound to a display, painting in black at the
// display's scaled one-pixel width.
func NewCursor(d draw.Display) *Cursor {
	return &Cursor{
		display: d,
		color:   draw.AllocColorImage(d, stdcolor.Black),
		width:   d.ScaleSize(2),
	}
}

// setSurface points the caret at the surface it paints on. Called by the
// orchestrator whenever the surface is (re)allocated.
func (c *Cursor) setSurface(s draw.Image) {
	c.surface = s
	c.drawn = false
}

// SetPosition places the caret at the right edge of the given element
// geometry.
func (c *Cursor) SetPosition(p Position) {
	c.pos = p
	c.has = true
}

// Position returns the caret's current placement, reporting false when no
// placement has been set.
func (c *Cursor) Position() (Position, bool) {
	return c.pos, c.has
}

// Clear restores the pixels saved under the previously drawn caret.
func (c *Cursor) Clear() {
	if !c.drawn || c.surface == nil {
		return
	}
	if c.saved != nil {
		c.surface.Draw(c.drawnAt, c.saved, nil, image.ZP)
	}
	c.drawn = false
}

// Draw paints the caret at the set position and saves the pixels it
// covers.
func (c *Cursor) Draw() {
	if !c.has || c.surface == nil {
		return
	}
	r := c.rect()
	saved, err := c.display.AllocImage(image.Rect(0, 0, r.Dx(), r.Dy()), false, draw.White)
	if err == nil {
		saved.Draw(saved.R(), c.surface, nil, r.Min)
		if c.saved != nil {
			c.saved.Free()
		}
		c.saved = saved
	}
	c.surface.Draw(r, c.color, nil, image.ZP)
	c.drawnAt = r
	c.drawn = true
}

func (c *Cursor) rect() image.Rectangle {
	x := c.pos.Rect.Max.X
	return image.Rect(x, c.pos.Rect.Min.Y, x+c.width, c.pos.Rect.Min.Y+c.pos.LineHeight)
}

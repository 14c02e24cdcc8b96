// Package draw defines the drawing-surface, paint-context and
// glyph-measurement interfaces the canvas renders through. The canvas core
// never talks to a concrete backend; it sees only Display, Image and Font.
// Two implementations ship with the module: an in-process software raster
// (memory.go) and a devdraw window-system backend (devdraw.go, build tag
// "devdraw"). Tests use the mock in canvastest.
package draw

import (
	"image"
	"image/color"
	"io"
)

// Color is a 32-bit r8g8b8a8 color value.
type Color uint32

const (
	Transparent Color = 0x00000000
	Opaque      Color = 0xFFFFFFFF
	Black       Color = 0x000000FF
	White       Color = 0xFFFFFFFF
	Notacolor   Color = 0xFFFFFF00
)

// RGBA converts c to a color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

// FromColor converts a color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color(uint32(r>>8)<<24 | uint32(g>>8)<<16 | uint32(b>>8)<<8 | uint32(a>>8))
}

// FontRequest names a font variant to open. Size is in pixels. Backends
// that cannot honor a variant fall back to the nearest one they have.
type FontRequest struct {
	Family string
	Size   int
	Bold   bool
	Italic bool
}

// Display is the host drawing device. It allocates surfaces and opens
// fonts; the canvas owns the images it allocates and frees them when done.
type Display interface {
	ScreenImage() Image
	AllocImage(r image.Rectangle, repl bool, val Color) (Image, error)

	// AllocImageFrom copies a decoded Go image into a display image of the
	// same dimensions.
	AllocImageFrom(src image.Image) (Image, error)

	OpenFont(req FontRequest) (Font, error)
	ScaleSize(n int) int
	Flush() error
}

// Image is a paintable 2D surface or color source.
type Image interface {
	Display() Display
	R() image.Rectangle

	// Draw copies src onto r of the destination, aligned so sp in src maps
	// to r.Min. mask, when non-nil, gates the copy by its alpha.
	Draw(r image.Rectangle, src, mask Image, sp image.Point)

	// Border strokes an n-pixel inset border of r with the color image.
	Border(r image.Rectangle, n int, color Image, sp image.Point)

	// Bytes paints UTF-8 text with its top-left corner at pt, filling glyphs
	// from src, and returns the point after the last glyph.
	Bytes(pt image.Point, src Image, sp image.Point, f Font, b []byte) image.Point

	Free() error
}

// Font measures and identifies an opened font variant. Ascent is the
// distance from the glyph box top to the baseline; Height-Ascent is the
// descent.
type Font interface {
	Name() string
	Size() int
	Height() int
	Ascent() int
	BytesWidth(b []byte) int
	RunesWidth(r []rune) int
	StringWidth(s string) int
}

// PNGEncoder is implemented by surfaces whose raster can be read back.
// Window-system surfaces need not implement it.
type PNGEncoder interface {
	EncodePNG(w io.Writer) error
}

// AllocColorImage allocates a replicated 1x1 color source on d, for use as
// a fill or text color. Returns nil if the display cannot allocate.
func AllocColorImage(d Display, c color.Color) Image {
	img, err := d.AllocImage(image.Rect(0, 0, 1, 1), true, FromColor(c))
	if err != nil {
		return nil
	}
	return img
}

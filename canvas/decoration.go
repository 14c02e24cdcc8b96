package canvas

import (
	"image"
	"image/color"

	"github.com/zjx-git/canvas-editor/draw"
)

// RectPainter is the collaborator contract for fixed-geometry decoration
// draws: the orchestrator computes the rectangle (underline band, strikeout
// band, highlight box, page background, margin frame) and the painter
// paints it. Hosts may substitute their own painters through options.
type RectPainter interface {
	Paint(dst draw.Image, r image.Rectangle)
}

// Default decoration colors.
var (
	DefaultBackground = color.White

	// MarginLineColor is the light gray of the page-margin frame.
	MarginLineColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

	// DefaultSelectionColor is a translucent blue selection band.
	// Translucent defaults are NRGBA; premultiplied channel values must
	// not exceed alpha.
	DefaultSelectionColor = color.NRGBA{R: 114, G: 139, B: 209, A: 64}

	// DefaultSearchColor is a translucent yellow band behind search matches.
	DefaultSearchColor = color.NRGBA{R: 240, G: 204, B: 0, A: 96}

	// DefaultHighlightColor is a stock highlight fill for styles that want
	// a highlight without choosing a color.
	DefaultHighlightColor = color.RGBA{R: 242, G: 242, B: 242, A: 255}
)

// fillPainter fills the given rectangle with one color.
type fillPainter struct {
	color draw.Image
}

// NewFillPainter returns a painter filling rectangles with c on d.
func NewFillPainter(d draw.Display, c color.Color) RectPainter {
	return fillPainter{color: draw.AllocColorImage(d, c)}
}

func (p fillPainter) Paint(dst draw.Image, r image.Rectangle) {
	if p.color == nil || r.Empty() {
		return
	}
	dst.Draw(r, p.color, nil, image.ZP)
}

// borderPainter strokes an inset border of the given rectangle.
type borderPainter struct {
	color draw.Image
	width int
}

// NewBorderPainter returns a painter stroking a width-pixel border in c.
func NewBorderPainter(d draw.Display, c color.Color, width int) RectPainter {
	return borderPainter{color: draw.AllocColorImage(d, c), width: width}
}

func (p borderPainter) Paint(dst draw.Image, r image.Rectangle) {
	if p.color == nil || r.Empty() {
		return
	}
	dst.Border(r, p.width, p.color, image.ZP)
}

//go:build devdraw
// +build devdraw

package draw

import (
	"fmt"
	"image"

	draw9 "9fans.net/go/draw"
)

// devDisplay backs the Display interface with a devdraw window. It is the
// backend to use when the canvas is hosted in an interactive window rather
// than rendering to an offscreen raster. Plan 9 bitmap fonts carry one
// fixed size per font file, so OpenFont treats the request's family as a
// font path and cannot honor size or variant flags.
type devDisplay struct {
	d *draw9.Display
}

var _ Display = (*devDisplay)(nil)

// NewDevDrawDisplay connects to the window system. The arguments mirror
// draw.Init: an optional error channel, a font path, the window label and
// the initial window size.
func NewDevDrawDisplay(errch chan<- error, fontname, label, winsize string) (Display, error) {
	d, err := draw9.Init(errch, fontname, label, winsize)
	if err != nil {
		return nil, fmt.Errorf("devdraw init: %w", err)
	}
	return &devDisplay{d: d}, nil
}

func (d *devDisplay) ScreenImage() Image  { return &devImage{d: d, i: d.d.ScreenImage} }
func (d *devDisplay) ScaleSize(n int) int { return d.d.ScaleSize(n) }
func (d *devDisplay) Flush() error        { return d.d.Flush() }

func (d *devDisplay) AllocImage(r image.Rectangle, repl bool, val Color) (Image, error) {
	i, err := d.d.AllocImage(r, d.d.ScreenImage.Pix, repl, draw9.Color(val))
	if err != nil {
		return nil, err
	}
	return &devImage{d: d, i: i}, nil
}

func (d *devDisplay) AllocImageFrom(src image.Image) (Image, error) {
	b := src.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	i, err := d.d.AllocImage(r, draw9.RGBA32, false, 0)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, r.Dx()*r.Dy()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, ca := src.At(x, y).RGBA()
			data = append(data, byte(cr>>8), byte(cg>>8), byte(cb>>8), byte(ca>>8))
		}
	}
	if _, err := i.Load(r, data); err != nil {
		i.Free()
		return nil, fmt.Errorf("load image pixels: %w", err)
	}
	return &devImage{d: d, i: i}, nil
}

func (d *devDisplay) OpenFont(req FontRequest) (Font, error) {
	f, err := d.d.OpenFont(req.Family)
	if err != nil {
		return nil, err
	}
	return &devFont{f: f}, nil
}

type devImage struct {
	d *devDisplay
	i *draw9.Image
}

var _ Image = (*devImage)(nil)

func (di *devImage) Display() Display   { return di.d }
func (di *devImage) R() image.Rectangle { return di.i.R }
func (di *devImage) Free() error        { return di.i.Free() }

func unwrap(i Image) *draw9.Image {
	if i == nil {
		return nil
	}
	return i.(*devImage).i
}

func (di *devImage) Draw(r image.Rectangle, src, mask Image, sp image.Point) {
	di.i.Draw(r, unwrap(src), unwrap(mask), sp)
}

func (di *devImage) Border(r image.Rectangle, n int, color Image, sp image.Point) {
	di.i.Border(r, n, unwrap(color), sp)
}

func (di *devImage) Bytes(pt image.Point, src Image, sp image.Point, f Font, b []byte) image.Point {
	return di.i.Bytes(pt, unwrap(src), sp, f.(*devFont).f, b)
}

type devFont struct {
	f *draw9.Font
}

var _ Font = (*devFont)(nil)

func (f *devFont) Name() string             { return f.f.Name }
func (f *devFont) Size() int                { return f.f.Height }
func (f *devFont) Height() int              { return f.f.Height }
func (f *devFont) Ascent() int              { return f.f.Ascent }
func (f *devFont) BytesWidth(b []byte) int  { return f.f.BytesWidth(b) }
func (f *devFont) RunesWidth(r []rune) int  { return f.f.RunesWidth(r) }
func (f *devFont) StringWidth(s string) int { return f.f.StringWidth(s) }

// Package canvastest contains utility types that help with testing the
// canvas renderer. Its mock display records every draw operation as a
// readable string so tests can assert on exactly what was painted, and its
// mock font has fixed per-rune metrics so layout results are predictable.
package canvastest

import (
	"fmt"
	"image"
	"strings"
	"unicode/utf8"

	"github.com/zjx-git/canvas-editor/draw"
)

const (
	fwidth  = 10
	fheight = 16
	fascent = 12
)

// GettableDrawOps display implementations can provide a list of the
// executed draw ops.
type GettableDrawOps interface {
	DrawOps() []string
	Clear()
}

// mockDisplay implements draw.Display.
type mockDisplay struct {
	drawops     []string
	screenimage draw.Image
}

var _ draw.Display = (*mockDisplay)(nil)

// NewDisplay returns a mock draw.Display with an r-sized screen image.
func NewDisplay(r image.Rectangle) draw.Display {
	md := &mockDisplay{}
	md.screenimage = newimageimpl(md, fmt.Sprintf("screen-%dx%d", r.Dx(), r.Dy()), draw.Notacolor, r)
	return md
}

func (d *mockDisplay) ScreenImage() draw.Image { return d.screenimage }
func (d *mockDisplay) ScaleSize(n int) int     { return n }
func (d *mockDisplay) Flush() error            { return nil }

func (d *mockDisplay) AllocImage(r image.Rectangle, repl bool, val draw.Color) (draw.Image, error) {
	return &mockImage{d: d, r: r, c: val, repl: repl}, nil
}

func (d *mockDisplay) AllocImageFrom(src image.Image) (draw.Image, error) {
	b := src.Bounds()
	name := fmt.Sprintf("bitmap-%dx%d", b.Dx(), b.Dy())
	return newimageimpl(d, name, draw.Notacolor, image.Rect(0, 0, b.Dx(), b.Dy())), nil
}

func (d *mockDisplay) OpenFont(req draw.FontRequest) (draw.Font, error) {
	return NewFont(fwidth, fheight, fascent, req), nil
}

func (d *mockDisplay) DrawOps() []string { return d.drawops }
func (d *mockDisplay) Clear()            { d.drawops = nil }

// mockImage implements draw.Image. Draw ops land on the owning display's
// op list regardless of which image they target; the op string names the
// target.
type mockImage struct {
	d    *mockDisplay
	r    image.Rectangle
	n    string
	c    draw.Color
	repl bool
}

var _ draw.Image = (*mockImage)(nil)

func newimageimpl(d *mockDisplay, name string, c draw.Color, r image.Rectangle) draw.Image {
	return &mockImage{d: d, r: r, c: c, n: name}
}

// NewImage returns a mock draw.Image with the given bounds.
func NewImage(display draw.Display, name string, r image.Rectangle) draw.Image {
	d := display.(*mockDisplay)
	return newimageimpl(d, name, draw.Notacolor, r)
}

func (i *mockImage) Display() draw.Display { return i.d }
func (i *mockImage) R() image.Rectangle    { return i.r }

func (i *mockImage) Free() error {
	i.d.drawops = append(i.d.drawops, fmt.Sprintf("%s <- free", i.N()))
	return nil
}

// N returns a nicename for the image.
func (i *mockImage) N() string {
	name := i.n
	if i.c != draw.Notacolor {
		name = fmt.Sprintf("color-%08x", uint32(i.c))
	}
	if i.repl {
		name += ",tiled"
	}
	return name
}

func srcname(src draw.Image) string {
	if src == nil {
		return "nil"
	}
	if ms, ok := src.(*mockImage); ok {
		return ms.N()
	}
	return "unknown"
}

func (i *mockImage) Draw(r image.Rectangle, src, mask draw.Image, sp image.Point) {
	op := fmt.Sprintf("%s <- fill %v src: %s", i.n, r, srcname(src))
	if ms, ok := src.(*mockImage); ok && !ms.repl && ms.c == draw.Notacolor {
		op = fmt.Sprintf("%s <- blit %v src: %s sp: %v", i.n, r, srcname(src), sp)
	}
	if mask != nil {
		op += fmt.Sprintf(" mask: %s", srcname(mask))
	}
	i.d.drawops = append(i.d.drawops, op)
}

func (i *mockImage) Border(r image.Rectangle, n int, color draw.Image, sp image.Point) {
	op := fmt.Sprintf("%s <- border %v thick: %d color: %s", i.n, r, n, srcname(color))
	i.d.drawops = append(i.d.drawops, op)
}

func (i *mockImage) Bytes(pt image.Point, src draw.Image, sp image.Point, f draw.Font, b []byte) image.Point {
	op := fmt.Sprintf("%s <- string %q atpoint: %v font: %s fill: %s",
		i.n, string(b), pt, f.Name(), srcname(src))
	i.d.drawops = append(i.d.drawops, op)
	return pt.Add(image.Pt(f.BytesWidth(b), 0))
}

// mockFont implements draw.Font as a fixed-width font: every rune is
// width*size/16 pixels wide so different requested sizes still produce
// different metrics.
type mockFont struct {
	width, height, ascent int
	req                   draw.FontRequest
}

var _ draw.Font = (*mockFont)(nil)

// NewFont returns a draw.Font that mocks a fixed-width font with the given
// per-rune width, line height and ascent at size 16; other sizes scale
// linearly.
func NewFont(width, height, ascent int, req draw.FontRequest) draw.Font {
	f := &mockFont{width: width, height: height, ascent: ascent, req: req}
	if req.Size > 0 && req.Size != 16 {
		f.width = width * req.Size / 16
		f.height = height * req.Size / 16
		f.ascent = ascent * req.Size / 16
	}
	return f
}

func (f *mockFont) Name() string {
	var sb strings.Builder
	if f.req.Family != "" {
		sb.WriteString(f.req.Family)
	} else {
		sb.WriteString("mock")
	}
	if f.req.Bold {
		sb.WriteString("-bold")
	}
	if f.req.Italic {
		sb.WriteString("-italic")
	}
	fmt.Fprintf(&sb, "-%d", f.req.Size)
	return sb.String()
}

func (f *mockFont) Size() int                { return f.req.Size }
func (f *mockFont) Height() int              { return f.height }
func (f *mockFont) Ascent() int              { return f.ascent }
func (f *mockFont) BytesWidth(b []byte) int  { return f.width * utf8.RuneCount(b) }
func (f *mockFont) RunesWidth(r []rune) int  { return f.width * len(r) }
func (f *mockFont) StringWidth(s string) int { return f.width * utf8.RuneCountInString(s) }

package draw

import (
	"fmt"
	"image"
	stddraw "image/draw"
	"image/png"
	"io"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// memDisplay is the in-process software raster backend. It needs no window
// system: surfaces are image.RGBA buffers and fonts are opentype faces over
// the embedded gofont collection. Surfaces implement PNGEncoder so the
// raster can be serialized.
type memDisplay struct {
	screen *memImage
}

var _ Display = (*memDisplay)(nil)

// NewMemoryDisplay returns a Display whose screen image is an r-sized
// software raster filled with white.
func NewMemoryDisplay(r image.Rectangle) Display {
	d := &memDisplay{}
	d.screen = newMemImage(d, r, White)
	return d
}

func (d *memDisplay) ScreenImage() Image  { return d.screen }
func (d *memDisplay) ScaleSize(n int) int { return n }
func (d *memDisplay) Flush() error        { return nil }

func (d *memDisplay) AllocImage(r image.Rectangle, repl bool, val Color) (Image, error) {
	if repl {
		return &memImage{d: d, r: r, repl: true, color: val}, nil
	}
	return newMemImage(d, r, val), nil
}

func (d *memDisplay) AllocImageFrom(src image.Image) (Image, error) {
	b := src.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())
	img := &memImage{d: d, r: r, rgba: image.NewRGBA(r)}
	stddraw.Draw(img.rgba, r, src, b.Min, stddraw.Src)
	return img, nil
}

func newMemImage(d *memDisplay, r image.Rectangle, val Color) *memImage {
	img := &memImage{d: d, r: r, rgba: image.NewRGBA(r)}
	stddraw.Draw(img.rgba, r, image.NewUniform(val.RGBA()), image.ZP, stddraw.Src)
	return img
}

// memImage is either a pixel buffer (rgba != nil) or a replicated color
// source (repl == true), mirroring the two kinds of draw images the canvas
// allocates.
type memImage struct {
	d     *memDisplay
	r     image.Rectangle
	rgba  *image.RGBA
	repl  bool
	color Color
}

var _ Image = (*memImage)(nil)
var _ PNGEncoder = (*memImage)(nil)

func (i *memImage) Display() Display   { return i.d }
func (i *memImage) R() image.Rectangle { return i.r }
func (i *memImage) Free() error        { return nil }

// source returns the image to read pixels from: the buffer, or an infinite
// uniform for replicated color images.
func (i *memImage) source() image.Image {
	if i.repl || i.rgba == nil {
		return image.NewUniform(i.color.RGBA())
	}
	return i.rgba
}

func (i *memImage) Draw(r image.Rectangle, src, mask Image, sp image.Point) {
	if i.rgba == nil {
		return // color sources are not paintable
	}
	var srcImg image.Image = image.Transparent
	if src != nil {
		if ms, ok := src.(*memImage); ok {
			srcImg = ms.source()
		}
	}
	if mask == nil {
		stddraw.Draw(i.rgba, r, srcImg, sp, stddraw.Over)
		return
	}
	var maskImg image.Image = image.Opaque
	if mm, ok := mask.(*memImage); ok {
		maskImg = mm.source()
	}
	stddraw.DrawMask(i.rgba, r, srcImg, sp, maskImg, sp, stddraw.Over)
}

func (i *memImage) Border(r image.Rectangle, n int, color Image, sp image.Point) {
	if i.rgba == nil || n <= 0 {
		return
	}
	i.Draw(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+n), color, nil, sp)
	i.Draw(image.Rect(r.Min.X, r.Max.Y-n, r.Max.X, r.Max.Y), color, nil, sp)
	i.Draw(image.Rect(r.Min.X, r.Min.Y+n, r.Min.X+n, r.Max.Y-n), color, nil, sp)
	i.Draw(image.Rect(r.Max.X-n, r.Min.Y+n, r.Max.X, r.Max.Y-n), color, nil, sp)
}

func (i *memImage) Bytes(pt image.Point, src Image, sp image.Point, f Font, b []byte) image.Point {
	mf, ok := f.(*memFont)
	if !ok || i.rgba == nil {
		return pt.Add(image.Pt(f.BytesWidth(b), 0))
	}
	var fill image.Image = image.Black
	if ms, ok := src.(*memImage); ok {
		fill = ms.source()
	}
	drawer := font.Drawer{
		Dst:  i.rgba,
		Src:  fill,
		Face: mf.face,
		Dot:  fixed.P(pt.X, pt.Y+mf.ascent),
	}
	drawer.DrawString(string(b))
	return image.Pt(drawer.Dot.X.Ceil(), pt.Y)
}

func (i *memImage) EncodePNG(w io.Writer) error {
	if i.rgba == nil {
		return fmt.Errorf("image %v has no pixel buffer", i.r)
	}
	return png.Encode(w, i.rgba)
}

// The gofont collection, parsed once per variant on first use.
var (
	sfntMu    sync.Mutex
	sfntCache = map[string]*sfnt.Font{}
)

func parsedFont(key string, ttf []byte) (*sfnt.Font, error) {
	sfntMu.Lock()
	defer sfntMu.Unlock()
	if f, ok := sfntCache[key]; ok {
		return f, nil
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font %s: %w", key, err)
	}
	sfntCache[key] = f
	return f, nil
}

// ttfForRequest picks the gofont variant for a request. Any family name
// containing "mono" gets the monospace face; everything else maps onto the
// proportional family with bold/italic variants.
func ttfForRequest(req FontRequest) (string, []byte) {
	if strings.Contains(strings.ToLower(req.Family), "mono") {
		return "gomono", gomono.TTF
	}
	switch {
	case req.Bold && req.Italic:
		return "gobolditalic", gobolditalic.TTF
	case req.Bold:
		return "gobold", gobold.TTF
	case req.Italic:
		return "goitalic", goitalic.TTF
	}
	return "goregular", goregular.TTF
}

func (d *memDisplay) OpenFont(req FontRequest) (Font, error) {
	if req.Size <= 0 {
		return nil, fmt.Errorf("font size %d out of range", req.Size)
	}
	key, ttf := ttfForRequest(req)
	parsed, err := parsedFont(key, ttf)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(req.Size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("open face %s at %dpx: %w", key, req.Size, err)
	}
	m := face.Metrics()
	return &memFont{
		name:    key,
		size:    req.Size,
		face:    face,
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
	}, nil
}

// memFont measures through an opentype face. Height is ascent+descent,
// which keeps text metrics and row heights consistent regardless of the
// face's recommended line gap.
type memFont struct {
	name    string
	size    int
	face    font.Face
	ascent  int
	descent int
}

var _ Font = (*memFont)(nil)

func (f *memFont) Name() string { return f.name }
func (f *memFont) Size() int    { return f.size }
func (f *memFont) Height() int  { return f.ascent + f.descent }
func (f *memFont) Ascent() int  { return f.ascent }

func (f *memFont) StringWidth(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}
func (f *memFont) BytesWidth(b []byte) int { return f.StringWidth(string(b)) }
func (f *memFont) RunesWidth(r []rune) int { return f.StringWidth(string(r)) }

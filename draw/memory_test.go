package draw

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestMemoryDisplayScreen(t *testing.T) {
	r := image.Rect(0, 0, 100, 60)
	d := NewMemoryDisplay(r)
	screen := d.ScreenImage()
	if screen.R() != r {
		t.Errorf("screen rect %v, want %v", screen.R(), r)
	}
	if screen.Display() != d {
		t.Error("screen image not bound to its display")
	}
}

func TestMemoryFontMetrics(t *testing.T) {
	d := NewMemoryDisplay(image.Rect(0, 0, 10, 10))
	f, err := d.OpenFont(FontRequest{Family: "go", Size: 16})
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	if f.Ascent() <= 0 || f.Height() <= f.Ascent() {
		t.Errorf("implausible metrics: height %d ascent %d", f.Height(), f.Ascent())
	}
	w1 := f.StringWidth("a")
	w2 := f.StringWidth("ab")
	if w1 <= 0 || w2 <= w1 {
		t.Errorf("widths not monotonic: %d then %d", w1, w2)
	}
	if f.BytesWidth([]byte("ab")) != w2 || f.RunesWidth([]rune("ab")) != w2 {
		t.Error("width measures disagree for the same text")
	}
}

func TestMemoryFontVariants(t *testing.T) {
	d := NewMemoryDisplay(image.Rect(0, 0, 10, 10))
	for _, req := range []FontRequest{
		{Family: "go", Size: 16},
		{Family: "go", Size: 16, Bold: true},
		{Family: "go", Size: 16, Italic: true},
		{Family: "go", Size: 16, Bold: true, Italic: true},
		{Family: "go mono", Size: 14},
	} {
		f, err := d.OpenFont(req)
		if err != nil {
			t.Errorf("OpenFont(%+v): %v", req, err)
			continue
		}
		if f.Size() != req.Size {
			t.Errorf("OpenFont(%+v).Size() = %d", req, f.Size())
		}
	}
}

func TestMemoryDrawFill(t *testing.T) {
	d := NewMemoryDisplay(image.Rect(0, 0, 20, 20))
	screen := d.ScreenImage()

	red := AllocColorImage(d, color.RGBA{R: 255, A: 255})
	if red == nil {
		t.Fatal("AllocColorImage returned nil")
	}
	screen.Draw(image.Rect(5, 5, 10, 10), red, nil, image.ZP)

	var buf bytes.Buffer
	if err := screen.(PNGEncoder).EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("encoded raster is not a PNG")
	}
}

func TestMemoryAllocImageFrom(t *testing.T) {
	d := NewMemoryDisplay(image.Rect(0, 0, 50, 50))
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img, err := d.AllocImageFrom(src)
	if err != nil {
		t.Fatalf("AllocImageFrom: %v", err)
	}
	if got := img.R(); got.Dx() != 8 || got.Dy() != 4 {
		t.Errorf("bounds %v, want 8x4", got)
	}
}

func TestMemoryBytesAdvancesDot(t *testing.T) {
	d := NewMemoryDisplay(image.Rect(0, 0, 200, 50))
	f, err := d.OpenFont(FontRequest{Family: "go", Size: 16})
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	black := AllocColorImage(d, color.Black)
	end := d.ScreenImage().Bytes(image.Pt(10, 10), black, image.ZP, f, []byte("hi"))
	if end.X <= 10 || end.Y != 10 {
		t.Errorf("end point %v, want advanced x at same y", end)
	}
}

func TestColorConversions(t *testing.T) {
	c := FromColor(color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})
	if c != Color(0x112233FF) {
		t.Errorf("FromColor = %08x, want 112233ff", uint32(c))
	}
	back := c.RGBA()
	if back.R != 0x11 || back.G != 0x22 || back.B != 0x33 || back.A != 0xFF {
		t.Errorf("round trip: %+v", back)
	}
}

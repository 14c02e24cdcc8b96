package canvas

import (
	"log"

	"github.com/zjx-git/canvas-editor/draw"
)

// fontCache resolves a style to an opened font variant, caching by request.
// Variants that fail to open fall back to the default font; the failure is
// logged once because the fallback is cached under the failing request.
type fontCache struct {
	display  draw.Display
	fallback draw.Font
	fonts    map[draw.FontRequest]draw.Font
}

func newFontCache(d draw.Display, family string, size int) (*fontCache, error) {
	req := draw.FontRequest{Family: family, Size: size}
	f, err := d.OpenFont(req)
	if err != nil {
		return nil, err
	}
	return &fontCache{
		display:  d,
		fallback: f,
		fonts:    map[draw.FontRequest]draw.Font{req: f},
	}, nil
}

// fontFor returns the font for a resolved style.
func (fc *fontCache) fontFor(style Style) draw.Font {
	req := draw.FontRequest{
		Family: style.Font,
		Size:   style.Size,
		Bold:   style.Bold,
		Italic: style.Italic,
	}
	if f, ok := fc.fonts[req]; ok {
		return f
	}
	f, err := fc.display.OpenFont(req)
	if err != nil {
		log.Printf("canvas: open font %+v: %v; using default", req, err)
		f = fc.fallback
	}
	fc.fonts[req] = f
	return f
}

// Canvasdemo renders a sample rich-content document through the software
// raster backend and writes the result as a PNG, or prints it as a data
// URL for embedding.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/zjx-git/canvas-editor/canvas"
	"github.com/zjx-git/canvas-editor/draw"
)

var (
	width   = flag.Int("width", 794, "surface width in pixels")
	height  = flag.Int("height", 1123, "initial surface height in pixels")
	out     = flag.String("out", "canvas.png", "output PNG path")
	dataURL = flag.Bool("dataurl", false, "print a base64 data URL instead of writing a file")
	text    = flag.String("text", "", "render this text instead of the sample document")
)

func sampleDocument() []canvas.Element {
	return []canvas.Element{
		canvas.NewText("Canvas Editor", canvas.Style{Size: 32, Bold: true, RowFlex: canvas.RowFlexCenter}),
		canvas.NewLineBreak(),
		canvas.NewText("A row-based layout and paint engine. Text flows greedily ", canvas.Style{}),
		canvas.NewText("with styled runs", canvas.Style{Bold: true, Underline: true}),
		canvas.NewText(" mixed into the same row, and images ", canvas.Style{}),
		canvas.NewText("sit on the baseline", canvas.Style{Italic: true}),
		canvas.NewText(".", canvas.Style{}),
		canvas.NewLineBreak(),
		canvas.NewImage(sampleBitmap(120, 80), 120, 80, canvas.Style{}),
		canvas.NewLineBreak(),
		canvas.NewText("highlighted", canvas.Style{Highlight: canvas.DefaultHighlightColor}),
		canvas.NewText(" and ", canvas.Style{}),
		canvas.NewText("struck", canvas.Style{Strikeout: true}),
		canvas.NewText(" text.", canvas.Style{}),
	}
}

func sampleBitmap(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 160,
				A: 255,
			})
		}
	}
	return img
}

func main() {
	flag.Parse()

	display := draw.NewMemoryDisplay(image.Rect(0, 0, *width, *height))

	els := sampleDocument()
	if *text != "" {
		els = []canvas.Element{canvas.NewText(*text, canvas.Style{})}
	}

	c, err := canvas.New(display, nil, els)
	if err != nil {
		log.Fatalf("canvasdemo: %v", err)
	}
	c.FirstRender()

	if *dataURL {
		url, err := c.DataURL()
		if err != nil {
			log.Fatalf("canvasdemo: %v", err)
		}
		fmt.Println(url)
		return
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("canvasdemo: %v", err)
	}
	defer f.Close()
	enc, ok := c.Surface().(draw.PNGEncoder)
	if !ok {
		log.Fatal("canvasdemo: surface cannot be encoded")
	}
	if err := enc.EncodePNG(f); err != nil {
		log.Fatalf("canvasdemo: %v", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *out, c.Surface().R().Dx(), c.Surface().R().Dy())
}

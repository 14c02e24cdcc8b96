package canvas

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sanity-io/litter"

	"github.com/zjx-git/canvas-editor/canvastest"
)

// The mock font is fixed width: 10px per rune, height 16, ascent 12 at
// size 16. Layout tests pick available widths against those numbers.

func testLayoutConfig(width int) layoutConfig {
	return layoutConfig{
		availableWidth:   width,
		defaultFont:      "go",
		defaultSize:      16,
		defaultRowMargin: 1,
	}
}

func testFontCache(t *testing.T) *fontCache {
	t.Helper()
	d := canvastest.NewDisplay(image.Rect(0, 0, 500, 500))
	fc, err := newFontCache(d, "go", 16)
	if err != nil {
		t.Fatalf("newFontCache: %v", err)
	}
	return fc
}

func rowTexts(r Row) []string {
	var out []string
	for _, re := range r.Elements {
		out = append(out, re.Element.Text)
	}
	return out
}

func TestComputeRowsGreedyBreaking(t *testing.T) {
	fc := testFontCache(t)
	els := []Element{
		NewText("A", Style{}),
		NewText("B", Style{}),
		NewText("C", Style{}),
	}

	// 25px fits two 10px runs but not three.
	rows := computeRows(els, testLayoutConfig(25), fc)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %s", len(rows), litter.Sdump(rows))
	}
	if diff := cmp.Diff([]string{"A", "B"}, rowTexts(rows[0])); diff != "" {
		t.Errorf("row 0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"C"}, rowTexts(rows[1])); diff != "" {
		t.Errorf("row 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeRowsEmpty(t *testing.T) {
	fc := testFontCache(t)
	if rows := computeRows(nil, testLayoutConfig(100), fc); rows != nil {
		t.Errorf("empty sequence: got %d rows, want none", len(rows))
	}
}

func TestComputeRowsCompleteness(t *testing.T) {
	fc := testFontCache(t)
	els := []Element{
		NewText("one", Style{}),
		NewLineBreak(),
		NewText("two", Style{}),
		NewImage(image.NewRGBA(image.Rect(0, 0, 20, 20)), 20, 20, Style{}),
		NewText("three", Style{}),
	}
	rows := computeRows(els, testLayoutConfig(60), fc)
	n := 0
	for _, r := range rows {
		n += len(r.Elements)
	}
	if n != len(els) {
		t.Errorf("laid out %d elements, want %d", n, len(els))
	}
}

func TestComputeRowsLineBreak(t *testing.T) {
	fc := testFontCache(t)

	t.Run("midsequence", func(t *testing.T) {
		els := []Element{
			NewText("A", Style{}),
			NewLineBreak(),
			NewText("B", Style{}),
		}
		rows := computeRows(els, testLayoutConfig(100), fc)
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		// The break marker opens the new row it creates.
		if rows[1].Elements[0].Element.Type != ElementLineBreak {
			t.Errorf("row 1 does not start with the break marker")
		}
	})

	t.Run("leading", func(t *testing.T) {
		els := []Element{
			NewLineBreak(),
			NewText("A", Style{}),
		}
		rows := computeRows(els, testLayoutConfig(100), fc)
		if len(rows) != 1 {
			t.Fatalf("leading break: got %d rows, want 1", len(rows))
		}
	})
}

func TestComputeRowsImageShrink(t *testing.T) {
	fc := testFontCache(t)

	t.Run("emptyrow", func(t *testing.T) {
		els := []Element{
			NewImage(image.NewRGBA(image.Rect(0, 0, 100, 50)), 100, 50, Style{}),
		}
		rows := computeRows(els, testLayoutConfig(40), fc)
		m := rows[0].Elements[0].Metrics
		if m.Width != 40 || m.Height != 20 {
			t.Errorf("shrunk to %dx%d, want 40x20", m.Width, m.Height)
		}
	})

	t.Run("remaining", func(t *testing.T) {
		els := []Element{
			NewText("A", Style{}),
			NewImage(image.NewRGBA(image.Rect(0, 0, 100, 50)), 100, 50, Style{}),
		}
		rows := computeRows(els, testLayoutConfig(25), fc)
		if len(rows) != 1 {
			t.Fatalf("got %d rows, want 1 (image shrinks, never wraps)", len(rows))
		}
		m := rows[0].Elements[1].Metrics
		if m.Width != 15 {
			t.Errorf("image width %d, want remaining 15", m.Width)
		}
		if m.Height != 50*15/100 {
			t.Errorf("image height %d, want %d", m.Height, 50*15/100)
		}
	})

	t.Run("fullrow", func(t *testing.T) {
		// Row already full: the image breaks to its own row, then shrinks
		// to the full available width.
		els := []Element{
			NewText("AB", Style{}),
			NewImage(image.NewRGBA(image.Rect(0, 0, 100, 50)), 100, 50, Style{}),
		}
		rows := computeRows(els, testLayoutConfig(20), fc)
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		m := rows[1].Elements[0].Metrics
		if m.Width != 20 || m.Height != 10 {
			t.Errorf("shrunk to %dx%d, want 20x10", m.Width, m.Height)
		}
	})
}

func TestComputeRowsOversizeText(t *testing.T) {
	fc := testFontCache(t)
	els := []Element{
		NewText("A", Style{}),
		NewText("toowide", Style{}),
	}
	rows := computeRows(els, testLayoutConfig(25), fc)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Oversize text still gets a row; nothing is dropped.
	if got := rowTexts(rows[1]); len(got) != 1 || got[0] != "toowide" {
		t.Errorf("row 1 = %v, want [toowide]", got)
	}
}

func TestComputeRowsWidthContained(t *testing.T) {
	fc := testFontCache(t)
	els := []Element{
		NewText("abc", Style{}),
		NewText("de", Style{}),
		NewImage(image.NewRGBA(image.Rect(0, 0, 80, 40)), 80, 40, Style{}),
		NewText("f", Style{}),
	}
	const avail = 50
	rows := computeRows(els, testLayoutConfig(avail), fc)
	for i, r := range rows {
		if r.Width > avail {
			t.Errorf("row %d width %d exceeds available %d", i, r.Width, avail)
		}
	}
}

func TestComputeRowsHeightAndAscent(t *testing.T) {
	fc := testFontCache(t)
	cfg := testLayoutConfig(200)
	cfg.basicRowMarginHeight = 8

	t.Run("text", func(t *testing.T) {
		rows := computeRows([]Element{NewText("A", Style{})}, cfg, fc)
		r := rows[0]
		// 8px margin above and below a 16px line, baseline at 8+12.
		if r.Height != 32 || r.Ascent != 20 {
			t.Errorf("height %d ascent %d, want 32 and 20", r.Height, r.Ascent)
		}
	})

	t.Run("multiplier", func(t *testing.T) {
		rows := computeRows([]Element{NewText("A", Style{RowMargin: 2})}, cfg, fc)
		r := rows[0]
		if r.Height != 48 || r.Ascent != 28 {
			t.Errorf("height %d ascent %d, want 48 and 28", r.Height, r.Ascent)
		}
	})

	t.Run("imagebaseline", func(t *testing.T) {
		// Images contribute their full height as ascent so they rest on
		// the baseline of the text alongside.
		els := []Element{
			NewText("A", Style{}),
			NewImage(image.NewRGBA(image.Rect(0, 0, 30, 30)), 30, 30, Style{}),
		}
		rows := computeRows(els, cfg, fc)
		r := rows[0]
		if r.Ascent != 38 {
			t.Errorf("ascent %d, want 8+30", r.Ascent)
		}
		if r.Height != 46 {
			t.Errorf("height %d, want 2*8+30", r.Height)
		}
	})
}

func TestComputeRowsFlexFromFirstElement(t *testing.T) {
	fc := testFontCache(t)
	els := []Element{
		NewText("A", Style{RowFlex: RowFlexCenter}),
		NewText("B", Style{RowFlex: RowFlexRight}),
		NewLineBreak(),
		NewText("C", Style{RowFlex: RowFlexRight}),
	}
	rows := computeRows(els, testLayoutConfig(200), fc)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Flex != RowFlexCenter {
		t.Errorf("row 0 flex %v, want center from first element", rows[0].Flex)
	}
}

func TestComputeRowsBiggerFontStretchesRow(t *testing.T) {
	fc := testFontCache(t)
	els := []Element{
		NewText("small", Style{}),
		NewText("big", Style{Size: 32}),
	}
	rows := computeRows(els, testLayoutConfig(500), fc)
	r := rows[0]
	if r.Height != 32 {
		t.Errorf("row height %d, want tallest element's 32", r.Height)
	}
	if r.Ascent != 24 {
		t.Errorf("row ascent %d, want 24", r.Ascent)
	}
	if diff := cmp.Diff([]string{"small", "big"}, rowTexts(r)); diff != "" {
		t.Errorf("row content (-want +got):\n%s", diff)
	}
}

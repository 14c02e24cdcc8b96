// Package canvas lays out a sequence of rich-content elements into rows,
// paints them onto a 2D surface, and maintains the editing state around
// the result: per-element position geometry, the selection range, the
// insertion caret and a bounded undo/redo history.
package canvas

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"log"

	xdraw "golang.org/x/image/draw"

	"github.com/zjx-git/canvas-editor/draw"
)

// Listener receives canvas notifications. Hosts use it to resize their
// viewport when the canvas grows its surface.
type Listener interface {
	SurfaceResized(width, height int)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(width, height int)

func (f ListenerFunc) SurfaceResized(w, h int) { f(w, h) }

// ErrRasterUnsupported reports a surface whose pixels cannot be read back,
// such as a window-system image.
var ErrRasterUnsupported = errors.New("canvas: surface raster cannot be read back")

// Canvas is the draw orchestrator. It owns the element sequence and every
// piece of render-derived state; all mutation funnels through Render so
// the positions, selection, caret and history stay consistent with the
// pixels on the surface.
type Canvas struct {
	display draw.Display
	surface draw.Image
	fonts   *fontCache

	// ownsSurface is set once the canvas allocates a surface itself.
	// Host-provided surfaces and screen images are never freed here.
	ownsSurface bool

	elements  []Element
	rows      []Row
	positions PositionModel
	selection *RangeManager
	cursor    *Cursor
	history   *HistoryManager

	searchMatches []Range
	painterStyle  *Style
	listener      Listener

	margins              [4]int
	defaultFont          string
	defaultSize          int
	defaultRowMargin     float64
	basicRowMarginHeight int
	historyLimit         int

	textColor      color.Color
	selectionColor color.Color
	searchColor    color.Color

	backgroundPainter RectPainter
	marginPainter     RectPainter
	selectionPainter  RectPainter
	searchPainter     RectPainter
	underlinePainter  RectPainter
	strikeoutPainter  RectPainter

	textSrc draw.Image

	// highlight fills, keyed by color, allocated lazily.
	highlights map[draw.Color]RectPainter
}

// New builds a canvas over the given display and surface. A nil surface
// uses the display's screen image. The elements are copied; they become
// visible after FirstRender.
func New(display draw.Display, surface draw.Image, elements []Element, opts ...Option) (*Canvas, error) {
	c := &Canvas{
		display:              display,
		margins:              [4]int{100, 120, 100, 120},
		defaultFont:          "go",
		defaultSize:          16,
		defaultRowMargin:     1,
		basicRowMarginHeight: 8,
		historyLimit:         DefaultHistoryLimit,
		textColor:            color.Black,
		selectionColor:       DefaultSelectionColor,
		searchColor:          DefaultSearchColor,
		highlights:           make(map[draw.Color]RectPainter),
	}
	for _, opt := range opts {
		opt(c)
	}

	if surface == nil {
		surface = display.ScreenImage()
	}
	c.surface = surface

	fonts, err := newFontCache(display, c.defaultFont, c.defaultSize)
	if err != nil {
		return nil, err
	}
	c.fonts = fonts

	c.elements = cloneElements(elements)
	c.selection = NewRangeManager(func() int { return len(c.elements) })
	c.cursor = NewCursor(display)
	c.cursor.setSurface(surface)
	c.history = NewHistoryManager(c.historyLimit, c.applyHistoryStep)

	if c.backgroundPainter == nil {
		c.backgroundPainter = NewFillPainter(display, DefaultBackground)
	}
	if c.marginPainter == nil {
		c.marginPainter = NewBorderPainter(display, MarginLineColor, display.ScaleSize(1))
	}
	c.selectionPainter = NewFillPainter(display, c.selectionColor)
	c.searchPainter = NewFillPainter(display, c.searchColor)
	c.underlinePainter = NewFillPainter(display, c.textColor)
	c.strikeoutPainter = NewFillPainter(display, c.textColor)
	c.textSrc = draw.AllocColorImage(display, c.textColor)

	return c, nil
}

// FirstRender performs the initial paint and caret placement, seeding the
// undo baseline. Call once after construction; later repaints go through
// Render.
func (c *Canvas) FirstRender() {
	c.Render()
}

// Render runs the full paint pipeline: layout the elements into rows,
// grow the surface if the content outgrew it, clear the page, regenerate
// the position list while painting rows left to right, overlay selection
// and search bands, place the caret and record an undo step.
func (c *Canvas) Render(opts ...RenderOption) {
	cfg := renderConfig{submitHistory: true, setCursor: true}
	for _, o := range opts {
		o(&cfg)
	}

	var step HistoryStep
	if cfg.submitHistory {
		step = HistoryStep{
			Elements: cloneElements(c.elements),
			Range:    c.selection.Range(),
		}
	}

	if !cfg.reuseLayout || c.rows == nil {
		c.rows = computeRows(c.elements, c.layoutParams(), c.fonts)
	}
	c.ensureSurfaceHeight()

	c.cursor.Clear()
	c.backgroundPainter.Paint(c.surface, c.surface.R())
	c.marginPainter.Paint(c.surface, c.contentRect())
	c.positions.reset()

	origin := c.surface.R().Min
	sel := c.selection.Range()
	y := origin.Y + c.margins[0]
	for ri, row := range c.rows {
		x := origin.X + c.margins[3] + c.flexOffset(row)
		baseline := y + row.Ascent

		// Text runs batch into a pending buffer, flushed when the font
		// changes, an image interrupts the run, or the row ends.
		var run []byte
		var runFont draw.Font
		var runAt image.Point
		flush := func() {
			if len(run) == 0 {
				return
			}
			c.surface.Bytes(runAt, c.textSrc, image.ZP, runFont, run)
			run = run[:0]
		}

		var selRects []image.Rectangle
		for ei, re := range row.Elements {
			rect := image.Rect(x, y, x+re.Metrics.Width, y+row.Height)
			c.positions.append(Position{
				Index:       c.positions.Len(),
				RowIndex:    ri,
				Rect:        rect,
				LineHeight:  row.Height,
				Ascent:      row.Ascent,
				IsLastInRow: ei == len(row.Elements)-1,
			})

			if re.Style.Highlight != nil {
				c.highlightPainter(re.Style.Highlight).Paint(c.surface, rect)
			}

			switch re.Element.Type {
			case ElementText:
				f := c.fonts.fontFor(re.Style)
				if runFont != nil && f != runFont {
					flush()
				}
				if len(run) == 0 {
					runFont = f
					runAt = image.Pt(x, baseline-f.Ascent())
				}
				run = append(run, re.Element.Text...)
			case ElementImage:
				flush()
				c.paintImage(re, x, baseline)
			case ElementLineBreak:
				flush()
			}

			if re.Style.Underline {
				c.underlinePainter.Paint(c.surface, c.underlineRect(x, baseline, re.Metrics.Width))
			}
			if re.Style.Strikeout {
				c.strikeoutPainter.Paint(c.surface, c.strikeoutRect(x, baseline, re))
			}
			if !sel.Collapsed() && sel.Contains(c.positions.Len()-1) {
				selRects = append(selRects, rect)
			}

			x += re.Metrics.Width
		}
		flush()
		for _, r := range selRects {
			c.selectionPainter.Paint(c.surface, r)
		}
		y += row.Height
	}

	c.paintSearchMatches()

	caret := -1
	if cfg.setCursor {
		idx := c.positions.Len() - 1
		if cfg.hasTarget {
			idx = cfg.target
		}
		if pos, ok := c.positions.At(idx); ok {
			caret = idx
			c.cursor.SetPosition(pos)
			c.cursor.Draw()
		}
	}

	if cfg.submitHistory {
		step.Caret = caret
		c.history.Execute(step)
	}
	c.display.Flush()
}

func (c *Canvas) layoutParams() layoutConfig {
	return layoutConfig{
		availableWidth:       c.surface.R().Dx() - c.margins[1] - c.margins[3],
		defaultFont:          c.defaultFont,
		defaultSize:          c.defaultSize,
		defaultRowMargin:     c.defaultRowMargin,
		basicRowMarginHeight: c.basicRowMarginHeight,
	}
}

// contentRect is the margin frame: the surface rectangle inset by the
// page margins.
func (c *Canvas) contentRect() image.Rectangle {
	r := c.surface.R()
	return image.Rect(
		r.Min.X+c.margins[3],
		r.Min.Y+c.margins[0],
		r.Max.X-c.margins[1],
		r.Max.Y-c.margins[2],
	)
}

// flexOffset is the horizontal shift applied to a row by its alignment.
func (c *Canvas) flexOffset(row Row) int {
	remaining := c.layoutParams().availableWidth - row.Width
	if remaining <= 0 {
		return 0
	}
	switch row.Flex {
	case RowFlexCenter:
		return remaining / 2
	case RowFlexRight:
		return remaining
	}
	return 0
}

// ensureSurfaceHeight reallocates the surface taller when the laid-out
// content no longer fits between the vertical margins. The width never
// changes; growth notifies the listener.
func (c *Canvas) ensureSurfaceHeight() {
	need := c.margins[0] + rowsHeight(c.rows) + c.margins[2]
	r := c.surface.R()
	if need <= r.Dy() {
		return
	}
	img, err := c.display.AllocImage(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+need), false, draw.White)
	if err != nil {
		log.Printf("canvas: grow surface to height %d: %v", need, err)
		return
	}
	if c.ownsSurface {
		c.surface.Free()
	}
	c.surface = img
	c.ownsSurface = true
	c.cursor.setSurface(img)
	if c.listener != nil {
		c.listener.SurfaceResized(img.R().Dx(), img.R().Dy())
	}
}

// paintImage scales the element bitmap to its laid-out metrics and draws
// it with its bottom edge on the row baseline. Scaling happens here in
// software so backends only ever blit.
func (c *Canvas) paintImage(re RowElement, x, baseline int) {
	src := re.Element.Image
	w, h := re.Metrics.Width, re.Metrics.Height
	if src == nil || w <= 0 || h <= 0 {
		return
	}
	b := src.Bounds()
	if b.Dx() != w || b.Dy() != h {
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.BiLinear.Scale(scaled, scaled.Bounds(), src, b, xdraw.Src, nil)
		src = scaled
	}
	img, err := c.display.AllocImageFrom(src)
	if err != nil {
		log.Printf("canvas: alloc image element: %v", err)
		return
	}
	defer img.Free()
	c.surface.Draw(image.Rect(x, baseline-h, x+w, baseline), img, nil, image.ZP)
}

func (c *Canvas) underlineRect(x, baseline, width int) image.Rectangle {
	t := c.display.ScaleSize(1)
	return image.Rect(x, baseline+t, x+width, baseline+2*t)
}

func (c *Canvas) strikeoutRect(x, baseline int, re RowElement) image.Rectangle {
	t := c.display.ScaleSize(1)
	mid := baseline - re.Metrics.Ascent/2
	return image.Rect(x, mid, x+re.Metrics.Width, mid+t)
}

func (c *Canvas) highlightPainter(col color.Color) RectPainter {
	key := draw.FromColor(col)
	if p, ok := c.highlights[key]; ok {
		return p
	}
	p := NewFillPainter(c.display, col)
	c.highlights[key] = p
	return p
}

// --- editing operations ---

// Insert splices elements into the sequence at index, collapses the
// selection to a caret after them and repaints.
func (c *Canvas) Insert(index int, els ...Element) {
	if index < 0 {
		index = 0
	}
	if index > len(c.elements) {
		index = len(c.elements)
	}
	ins := cloneElements(els)
	c.elements = append(c.elements[:index:index], append(ins, c.elements[index:]...)...)
	caret := index + len(ins)
	c.selection.SetRange(caret, caret)
	c.Render(WithTargetIndex(caret - 1))
}

// Delete removes the half-open element interval [start, end), collapses
// the selection to a caret at the cut and repaints.
func (c *Canvas) Delete(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(c.elements) {
		end = len(c.elements)
	}
	if start >= end {
		return
	}
	c.elements = append(c.elements[:start], c.elements[end:]...)
	c.selection.SetRange(start, start)
	c.Render(WithTargetIndex(start - 1))
}

// SetElements replaces the whole document and repaints.
func (c *Canvas) SetElements(els []Element) {
	c.elements = cloneElements(els)
	c.selection.clamp()
	c.Render()
}

// Elements returns a copy of the element sequence.
func (c *Canvas) Elements() []Element {
	return cloneElements(c.elements)
}

// --- history ---

// Undo restores the previous recorded state. Returns false at the
// baseline.
func (c *Canvas) Undo() bool { return c.history.Undo() }

// Redo re-applies the most recently undone state.
func (c *Canvas) Redo() bool { return c.history.Redo() }

// CanUndo reports whether Undo would change state.
func (c *Canvas) CanUndo() bool { return c.history.CanUndo() }

// CanRedo reports whether Redo would change state.
func (c *Canvas) CanRedo() bool { return c.history.CanRedo() }

// applyHistoryStep is the restore interpreter: it swaps in the step's
// element snapshot and selection and repaints with history capture
// suppressed, so replaying a step never records a new one.
func (c *Canvas) applyHistoryStep(step HistoryStep) {
	c.elements = cloneElements(step.Elements)
	c.selection.SetRange(step.Range.Start, step.Range.End)
	c.Render(WithoutHistory(), WithTargetIndex(step.Caret))
}

// --- selection, positions, hit testing ---

// Selection returns the current selection range.
func (c *Canvas) Selection() Range { return c.selection.Range() }

// Select sets the selection, clamped to the element count, and repaints
// from the cached layout. Selection changes are not recorded as history
// steps.
func (c *Canvas) Select(start, end int) {
	c.selection.SetRange(start, end)
	r := c.selection.Range()
	c.Render(WithoutHistory(), WithCachedLayout(), WithTargetIndex(r.End-1))
}

// Positions returns the position list of the last render pass.
func (c *Canvas) Positions() []Position { return c.positions.Positions() }

// PositionAt returns the rendered geometry for element i.
func (c *Canvas) PositionAt(i int) (Position, bool) { return c.positions.At(i) }

// IndexAt hit-tests a surface point, returning the index of the element
// under it, or -1.
func (c *Canvas) IndexAt(pt image.Point) int { return c.positions.IndexAt(pt) }

// RowCount is the number of rows in the last computed layout.
func (c *Canvas) RowCount() int { return len(c.rows) }

// --- format painter ---

// SetPainterStyle records a style for the format painter; nil clears it.
func (c *Canvas) SetPainterStyle(s *Style) {
	if s == nil {
		c.painterStyle = nil
		return
	}
	st := *s
	c.painterStyle = &st
}

// PainterStyle returns the recorded format-painter style, or nil.
func (c *Canvas) PainterStyle() *Style {
	if c.painterStyle == nil {
		return nil
	}
	st := *c.painterStyle
	return &st
}

// ApplyPainterStyle restyles the text elements of the current selection
// with the recorded style, clears the painter and repaints.
func (c *Canvas) ApplyPainterStyle() {
	if c.painterStyle == nil {
		return
	}
	sel := c.selection.Range()
	if sel.Collapsed() {
		return
	}
	st := *c.painterStyle
	for i := sel.Start; i < sel.End; i++ {
		if c.elements[i].Type == ElementText {
			c.elements[i].Style = st
		}
	}
	c.painterStyle = nil
	c.Render(WithTargetIndex(sel.End - 1))
}

// --- export ---

// Surface returns the canvas's current drawing surface.
func (c *Canvas) Surface() draw.Image { return c.surface }

// DataURL encodes the surface raster as a base64 PNG data URL. Fails with
// ErrRasterUnsupported on surfaces whose pixels cannot be read back.
func (c *Canvas) DataURL() (string, error) {
	enc, ok := c.surface.(draw.PNGEncoder)
	if !ok {
		return "", ErrRasterUnsupported
	}
	var buf bytes.Buffer
	if err := enc.EncodePNG(&buf); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

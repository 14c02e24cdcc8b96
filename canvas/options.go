package canvas

import (
	"image/color"
)

// Option is a functional option for configuring a Canvas at construction.
type Option func(*Canvas)

// WithMargins sets the page margins in pixels, clockwise from the top.
func WithMargins(top, right, bottom, left int) Option {
	return func(c *Canvas) {
		c.margins = [4]int{top, right, bottom, left}
	}
}

// WithDefaultFont sets the family and size used by elements whose style
// names neither.
func WithDefaultFont(family string, size int) Option {
	return func(c *Canvas) {
		c.defaultFont = family
		c.defaultSize = size
	}
}

// WithRowMargin sets the basic row margin height in pixels and the default
// per-element multiplier applied to it.
func WithRowMargin(basic int, multiplier float64) Option {
	return func(c *Canvas) {
		c.basicRowMarginHeight = basic
		c.defaultRowMargin = multiplier
	}
}

// WithHistoryLimit bounds the undo stack to n steps.
func WithHistoryLimit(n int) Option {
	return func(c *Canvas) {
		c.historyLimit = n
	}
}

// WithListener registers a host callback for canvas events.
func WithListener(l Listener) Option {
	return func(c *Canvas) {
		c.listener = l
	}
}

// WithTextColor sets the glyph color.
func WithTextColor(col color.Color) Option {
	return func(c *Canvas) {
		c.textColor = col
	}
}

// WithSelectionColor sets the color of the selection band.
func WithSelectionColor(col color.Color) Option {
	return func(c *Canvas) {
		c.selectionColor = col
	}
}

// WithSearchColor sets the color of search-match bands.
func WithSearchColor(col color.Color) Option {
	return func(c *Canvas) {
		c.searchColor = col
	}
}

// WithBackgroundPainter substitutes the painter that clears the page.
func WithBackgroundPainter(p RectPainter) Option {
	return func(c *Canvas) {
		c.backgroundPainter = p
	}
}

// WithMarginPainter substitutes the painter that strokes the margin frame.
func WithMarginPainter(p RectPainter) Option {
	return func(c *Canvas) {
		c.marginPainter = p
	}
}

// renderConfig carries the per-call knobs of a render pass.
type renderConfig struct {
	submitHistory bool
	setCursor     bool
	hasTarget     bool
	target        int
	reuseLayout   bool
}

// RenderOption is a functional option for a single Render call.
type RenderOption func(*renderConfig)

// WithTargetIndex places the caret at the position entry for element i
// instead of the last entry.
func WithTargetIndex(i int) RenderOption {
	return func(rc *renderConfig) {
		rc.hasTarget = true
		rc.target = i
	}
}

// WithoutHistory skips the undo snapshot for this pass. Used when a pass
// replays a history step, so applying history never re-records it.
func WithoutHistory() RenderOption {
	return func(rc *renderConfig) {
		rc.submitHistory = false
	}
}

// WithoutCursor leaves the caret undrawn.
func WithoutCursor() RenderOption {
	return func(rc *renderConfig) {
		rc.setCursor = false
	}
}

// WithCachedLayout repaints from the rows of the previous pass without
// recomputing the layout. Only valid when the elements are unchanged.
func WithCachedLayout() RenderOption {
	return func(rc *renderConfig) {
		rc.reuseLayout = true
	}
}

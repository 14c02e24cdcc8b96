package canvas

// Metrics are the resolved pixel measurements of one laid-out element.
// Text elements take ascent/descent from their font; image elements have
// zero ascent and a descent equal to their height.
type Metrics struct {
	Width   int
	Height  int
	Ascent  int
	Descent int
}

// RowElement is a content element annotated with its resolved style and
// measured metrics. It is derived during layout and lives only inside a
// Row.
type RowElement struct {
	Element Element
	Style   Style
	Metrics Metrics
}

// Row is a computed layout unit: the elements assigned to one horizontal
// band, with aggregate width, height, baseline ascent and the alignment
// inherited from the row's first element. Rows are fully regenerated on
// every layout pass and never mutated in place.
type Row struct {
	Elements []RowElement
	Width    int
	Height   int
	Ascent   int
	Flex     RowFlex
}

// layoutConfig is the fully-resolved configuration the layout pass runs
// against.
type layoutConfig struct {
	availableWidth       int
	defaultFont          string
	defaultSize          int
	defaultRowMargin     float64
	basicRowMarginHeight int
}

// resolve fills a style's zero fields from the configured defaults.
func (cfg layoutConfig) resolve(s Style) Style {
	if s.Font == "" {
		s.Font = cfg.defaultFont
	}
	if s.Size <= 0 {
		s.Size = cfg.defaultSize
	}
	if s.RowMargin <= 0 {
		s.RowMargin = cfg.defaultRowMargin
	}
	return s
}

// rowMarginHeight is the extra line spacing added above and below an
// element: the basic row-margin unit scaled by the style's multiplier.
func (cfg layoutConfig) rowMarginHeight(s Style) int {
	return int(float64(cfg.basicRowMarginHeight) * s.RowMargin)
}

// resolveRowElement measures one element against the metrics provider.
func resolveRowElement(el Element, cfg layoutConfig, fonts *fontCache) RowElement {
	style := cfg.resolve(el.Style)
	re := RowElement{Element: el, Style: style}
	switch el.Type {
	case ElementImage:
		re.Metrics = Metrics{
			Width:   el.Width,
			Height:  el.Height,
			Ascent:  0,
			Descent: el.Height,
		}
	default:
		f := fonts.fontFor(style)
		w := 0
		if el.Type == ElementText {
			w = f.StringWidth(el.Text)
		}
		re.Metrics = Metrics{
			Width:   w,
			Height:  f.Height(),
			Ascent:  f.Ascent(),
			Descent: f.Height() - f.Ascent(),
		}
	}
	return re
}

// shrinkImage narrows an image element's metrics to width, rescaling the
// height against the pre-shrink width so the intrinsic aspect ratio is
// preserved.
func shrinkImage(re *RowElement, width int) {
	orig := re.Metrics.Width
	if orig <= 0 || width >= orig {
		return
	}
	re.Metrics.Height = re.Metrics.Height * width / orig
	re.Metrics.Width = width
	re.Metrics.Descent = re.Metrics.Height
}

// computeRows performs greedy line breaking over the element sequence.
//
// A new row starts when adding an element would exceed the available
// width, or on an explicit line-break marker that is not the very first
// element of the sequence. An image that does not fit the remaining row
// space is shrunk to it rather than wrapped; an image wider than the full
// available width is shrunk to the available width. A non-image element
// wider than the available width still gets a row of its own; it is never
// dropped.
//
// Row height and ascent grow to the largest value seen on the row, with
// each element's row margin added symmetrically. Images contribute their
// full height as ascent so their bottom edge sits on the baseline.
//
// An empty sequence yields an empty row list.
func computeRows(elements []Element, cfg layoutConfig, fonts *fontCache) []Row {
	if len(elements) == 0 {
		return nil
	}
	rows := make([]Row, 0, 4)
	var cur Row
	for i, el := range elements {
		re := resolveRowElement(el, cfg, fonts)
		margin := cfg.rowMarginHeight(re.Style)

		breakRow := el.Type == ElementLineBreak && i != 0
		if el.Type == ElementImage {
			remaining := cfg.availableWidth - cur.Width
			if re.Metrics.Width > remaining {
				if remaining > 0 {
					shrinkImage(&re, remaining)
				} else {
					breakRow = true
					if re.Metrics.Width > cfg.availableWidth {
						shrinkImage(&re, cfg.availableWidth)
					}
				}
			}
		} else if len(cur.Elements) > 0 && cur.Width+re.Metrics.Width > cfg.availableWidth {
			breakRow = true
		}

		if breakRow {
			rows = append(rows, cur)
			cur = Row{}
		}
		if len(cur.Elements) == 0 {
			cur.Flex = re.Style.RowFlex
		}

		height := 2*margin + re.Metrics.Height
		ascent := margin + re.Metrics.Ascent
		if el.Type == ElementImage {
			ascent = margin + re.Metrics.Height
		}
		if height > cur.Height {
			cur.Height = height
		}
		if ascent > cur.Ascent {
			cur.Ascent = ascent
		}
		cur.Width += re.Metrics.Width
		cur.Elements = append(cur.Elements, re)
	}
	rows = append(rows, cur)
	return rows
}

// rowsHeight is the summed height of all rows.
func rowsHeight(rows []Row) int {
	total := 0
	for _, r := range rows {
		total += r.Height
	}
	return total
}

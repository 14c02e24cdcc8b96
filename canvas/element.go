package canvas

import (
	"image"
	"image/color"
)

// ElementType tags the variant of a content element.
type ElementType uint8

const (
	ElementText ElementType = iota
	ElementImage
	ElementLineBreak
)

func (t ElementType) String() string {
	switch t {
	case ElementText:
		return "text"
	case ElementImage:
		return "image"
	case ElementLineBreak:
		return "linebreak"
	}
	return "unknown"
}

// RowFlex is the horizontal alignment policy for a row's content.
type RowFlex uint8

const (
	RowFlexLeft RowFlex = iota
	RowFlexCenter
	RowFlexRight
)

// Style carries the visual attributes of a content element. Zero values
// mean "use the configured default": an empty Font falls back to the
// default family, a zero Size to the default size and a zero RowMargin to
// the default row-margin multiplier.
type Style struct {
	Font      string
	Size      int
	Bold      bool
	Italic    bool
	Underline bool
	Strikeout bool

	// Highlight, when non-nil, paints a background band behind the element.
	Highlight color.Color

	// RowMargin multiplies the configured basic row-margin height.
	RowMargin float64

	RowFlex RowFlex
}

// Element is the atomic unit of content: a text run, an image, or a line
// break marker. Elements are immutable once laid out; a mutation replaces
// the element in the owning sequence. Image bitmaps are treated as
// immutable and may be shared between copies.
type Element struct {
	Type  ElementType
	Style Style

	// Text payload (ElementText).
	Text string

	// Image payload (ElementImage): the decoded bitmap and its intrinsic
	// pixel dimensions.
	Image  image.Image
	Width  int
	Height int
}

// NewText returns a text-run element.
func NewText(text string, style Style) Element {
	return Element{Type: ElementText, Text: text, Style: style}
}

// NewImage returns an image element with the given intrinsic dimensions.
func NewImage(img image.Image, width, height int, style Style) Element {
	return Element{Type: ElementImage, Image: img, Width: width, Height: height, Style: style}
}

// NewLineBreak returns an explicit line-break marker.
func NewLineBreak() Element {
	return Element{Type: ElementLineBreak}
}

// Clone returns a copy of e that shares no mutable state with the
// original. Payloads are value types apart from the bitmap reference,
// which is immutable by contract.
func (e Element) Clone() Element {
	return e
}

// cloneElements deep-copies an element sequence. History snapshots go
// through here so later mutation of the live sequence cannot corrupt them.
func cloneElements(els []Element) []Element {
	out := make([]Element, len(els))
	for i, e := range els {
		out[i] = e.Clone()
	}
	return out
}

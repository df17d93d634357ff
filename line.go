package textline

// UnderlineStyle describes an underline stroke.
type UnderlineStyle struct {
	// Color is the stroke color. When nil, the enclosing decoration run's
	// fill color is used.
	Color *Hsla

	// Thickness is the stroke thickness in pixels.
	Thickness float64

	// Wavy selects a wavy stroke instead of a straight one.
	Wavy bool
}

// resolve applies the color fallback, producing a style whose Color is
// always set. Resolved styles are what the paint algorithms compare when
// merging adjacent underline spans.
func (u UnderlineStyle) resolve(fallback Hsla) UnderlineStyle {
	c := fallback
	if u.Color != nil {
		c = *u.Color
	}
	return UnderlineStyle{Color: &c, Thickness: u.Thickness, Wavy: u.Wavy}
}

// Equal reports whether two styles draw the same stroke. Colors compare by
// value; a nil color only equals another nil color.
func (u UnderlineStyle) Equal(o UnderlineStyle) bool {
	if u.Thickness != o.Thickness || u.Wavy != o.Wavy {
		return false
	}
	if (u.Color == nil) != (o.Color == nil) {
		return false
	}
	return u.Color == nil || *u.Color == *o.Color
}

// DecorationRun is a run-length-encoded span of the source text sharing one
// fill color and optional underline. A Line's decoration runs cover its
// text exactly once: ordered, no gaps, no overlaps, lengths summing to the
// text's byte length.
type DecorationRun struct {
	// Len is the span length in bytes.
	Len int

	// Color is the glyph fill color for the span.
	Color Hsla

	// Underline, when non-nil, requests an underline stroke under the span.
	Underline *UnderlineStyle
}

// Line binds a shaped layout to the visual decorations of one rendered
// line. The layout is shared by pointer and may back several Lines; the
// decoration sequence is owned by value. A Line is immutable after
// construction and cheap to copy.
type Line struct {
	layout      *LineLayout
	decorations []DecorationRun
}

// NewLine binds layout and decorations into a paintable line.
//
// The decoration lengths must sum to the layout's text byte length;
// the paint algorithms' flush logic is undefined otherwise.
func NewLine(layout *LineLayout, decorations []DecorationRun) Line {
	return Line{layout: layout, decorations: decorations}
}

// Runs returns the layout's glyph runs. The returned slice is shared and
// must not be modified.
func (l Line) Runs() []ShapedRun {
	return l.layout.Runs
}

// Width returns the total advance width of the line.
func (l Line) Width() float64 {
	return l.layout.Width
}

// FontSize returns the size the line was shaped at.
func (l Line) FontSize() float64 {
	return l.layout.FontSize
}

// Len returns the byte length of the line's source text.
func (l Line) Len() int {
	return len(l.layout.Text)
}

// IsEmpty reports whether the line's source text is empty.
func (l Line) IsEmpty() bool {
	return len(l.layout.Text) == 0
}

// XForIndex returns the x position of the first glyph whose byte index is
// at or past index. If index is beyond every glyph, it returns the line
// width. The result is monotonically non-decreasing in index.
func (l Line) XForIndex(index int) float64 {
	for _, run := range l.layout.Runs {
		for _, glyph := range run.Glyphs {
			if glyph.Index >= index {
				return glyph.Position.X
			}
		}
	}
	return l.layout.Width
}

// FontForIndex returns the font of the glyph covering index. The second
// return value is false when index is beyond every glyph.
func (l Line) FontForIndex(index int) (FontID, bool) {
	for _, run := range l.layout.Runs {
		for _, glyph := range run.Glyphs {
			if glyph.Index >= index {
				return run.FontID, true
			}
		}
	}
	return 0, false
}

// IndexForX returns the byte index of the glyph under the x coordinate,
// for cursor placement and hit-testing. The second return value is false
// when x is at or past the line width: there is no glyph there and a
// cursor must not be placed via this query. An x left of the first glyph
// resolves to index 0.
func (l Line) IndexForX(x float64) (int, bool) {
	if x >= l.layout.Width {
		return 0, false
	}
	for i := len(l.layout.Runs) - 1; i >= 0; i-- {
		glyphs := l.layout.Runs[i].Glyphs
		for j := len(glyphs) - 1; j >= 0; j-- {
			if glyphs[j].Position.X <= x {
				return glyphs[j].Index, true
			}
		}
	}
	return 0, true
}

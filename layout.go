package textline

// FontID uniquely identifies a font within the shaper that produced a
// layout. The renderer resolves it back to font data; this package only
// passes it through.
type FontID uint64

// GlyphID is the glyph index within a font.
type GlyphID uint16

// ShapedGlyph is one positioned glyph in a shaped line.
type ShapedGlyph struct {
	// ID is the glyph index in the run's font.
	ID GlyphID

	// Index is the byte offset of the glyph's source character in the
	// original text. Indices are monotonically non-decreasing across the
	// whole layout.
	Index int

	// Position is the glyph offset from the line start. For horizontal
	// text only X is meaningful.
	Position Point

	// IsEmoji selects the emoji draw primitive, which carries its own
	// color, over the regular glyph primitive.
	IsEmoji bool
}

// ShapedRun is a maximal sequence of shaped glyphs sharing one font.
type ShapedRun struct {
	// FontID identifies the font for every glyph in the run.
	FontID FontID

	// Glyphs is the ordered sequence of positioned glyphs.
	Glyphs []ShapedGlyph
}

// LineLayout is the immutable result of shaping one logical line of text.
//
// A LineLayout is shared by pointer: once the shaper returns it, nothing
// mutates it, so any number of Lines (and goroutines) may read it
// concurrently. Lifetime is governed by the garbage collector; the layout
// lives as long as its longest holder.
type LineLayout struct {
	// Runs is the ordered sequence of glyph runs. Glyph byte indices are
	// non-decreasing in run order and glyph order.
	Runs []ShapedRun

	// FontSize is the size the line was shaped at, in pixels.
	FontSize float64

	// Width is the total advance width of the line.
	Width float64

	// Ascent is the distance from the baseline to the line top (positive).
	Ascent float64

	// Descent is the distance from the baseline to the line bottom
	// (positive).
	Descent float64

	// Text is the original source string. The paint algorithms use only
	// its byte length.
	Text string
}

// Len returns the byte length of the layout's source text.
func (l *LineLayout) Len() int {
	return len(l.Text)
}

// ShapedBoundary marks the glyph at which a wrapped line starts a new
// visual row. Boundaries are ordered ascending by (RunIndex, GlyphIndex).
type ShapedBoundary struct {
	RunIndex   int
	GlyphIndex int
}

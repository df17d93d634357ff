// Package wrap decides where a shaped line breaks into visual rows.
//
// It walks a textline.LineLayout against a maximum row width and produces
// the ordered ShapedBoundary sequence that textline.Line.PaintWrapped
// consumes. Break opportunities follow a simplified form of UAX #14:
// breaks after spaces and hyphens, before and after CJK ideographs, with
// an optional per-character fallback for words wider than a row.
package wrap

import "github.com/gogpu/textline"

// Mode specifies how rows are broken when text exceeds the maximum width.
type Mode uint8

const (
	// ModeWordChar breaks at word boundaries first, then falls back to
	// character boundaries for words wider than a row. This is the
	// default.
	ModeWordChar Mode = iota

	// ModeWord breaks at word boundaries only; an over-wide word
	// overflows its row.
	ModeWord

	// ModeChar breaks at any character.
	ModeChar
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeWordChar:
		return "WordChar"
	case ModeWord:
		return "Word"
	case ModeChar:
		return "Char"
	default:
		return "Unknown"
	}
}

// Options configures boundary computation.
type Options struct {
	// MaxWidth is the maximum row width in pixels. Zero or negative
	// disables wrapping.
	MaxWidth float64

	// Mode selects the break strategy.
	Mode Mode
}

// breakClass is a reduced UAX #14 line breaking class.
type breakClass uint8

const (
	classOther breakClass = iota
	classSpace
	classHyphen
	classIdeographic
)

// classify returns the break class of a rune.
func classify(r rune) breakClass {
	switch r {
	case ' ', '\t', '​':
		return classSpace
	case '-', '‐', '‑', '–', '—':
		return classHyphen
	}
	if isCJK(r) {
		return classIdeographic
	}
	return classOther
}

// isCJK returns true if the rune is a CJK character that allows breaking
// on either side.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// candidate is a remembered break opportunity within the current row.
type candidate struct {
	boundary textline.ShapedBoundary
	x        float64
}

// Boundaries computes the ordered row boundaries for painting layout
// wrapped at opts.MaxWidth. The result is empty when the whole line fits
// in one row.
//
// The layout's glyph positions are absolute along the unwrapped line, so
// each boundary records the glyph whose position starts a new row; the
// paint algorithm performs the actual origin reset.
func Boundaries(layout *textline.LineLayout, opts Options) []textline.ShapedBoundary {
	if opts.MaxWidth <= 0 || layout.Width <= opts.MaxWidth {
		return nil
	}

	var boundaries []textline.ShapedBoundary
	var cand *candidate

	rowStart := 0.0
	rowFirst := true

	for runIx, run := range layout.Runs {
		for glyphIx, glyph := range run.Glyphs {
			right := glyphRight(layout, runIx, glyphIx)
			r := runeAt(layout.Text, glyph.Index)
			class := classify(r)

			// A break is allowed before this glyph when the previous
			// glyph ended a word (space or hyphen) or either side is a
			// CJK ideograph.
			if !rowFirst && breakAllowed(layout, runIx, glyphIx, class, opts.Mode) {
				cand = &candidate{
					boundary: textline.ShapedBoundary{RunIndex: runIx, GlyphIndex: glyphIx},
					x:        glyph.Position.X,
				}
			}

			// Spaces hang past the row edge rather than forcing a wrap.
			if !rowFirst && class != classSpace && right-rowStart > opts.MaxWidth {
				b, x := breakAt(cand, rowStart, opts.Mode, runIx, glyphIx, glyph.Position.X)
				if b != nil {
					boundaries = append(boundaries, *b)
					rowStart = x
					cand = nil
					// A word-boundary break may leave this glyph still
					// past the new row's width; the char fallback
					// re-breaks directly before it.
					if opts.Mode == ModeWordChar && right-rowStart > opts.MaxWidth &&
						glyph.Position.X > rowStart {
						boundaries = append(boundaries, textline.ShapedBoundary{RunIndex: runIx, GlyphIndex: glyphIx})
						rowStart = glyph.Position.X
					}
				}
			}

			rowFirst = false
		}
	}

	textline.Logger().Debug("wrap: boundaries computed",
		"boundaries", len(boundaries), "max_width", opts.MaxWidth)
	return boundaries
}

// breakAt picks where to break when the glyph at (runIx, glyphIx) with
// position x overflows the row: the remembered candidate when usable,
// otherwise the glyph itself for character-level modes. It returns nil
// when ModeWord has no candidate (the word overflows).
func breakAt(cand *candidate, rowStart float64, mode Mode, runIx, glyphIx int, x float64) (*textline.ShapedBoundary, float64) {
	if mode != ModeChar && cand != nil && cand.x > rowStart {
		return &cand.boundary, cand.x
	}
	if mode == ModeWord {
		return nil, rowStart
	}
	if x <= rowStart {
		// Cannot make progress breaking before the row's first glyph.
		return nil, rowStart
	}
	b := textline.ShapedBoundary{RunIndex: runIx, GlyphIndex: glyphIx}
	return &b, x
}

// breakAllowed reports whether a row may start at the glyph (runIx,
// glyphIx), based on the classes of this glyph's rune and the previous
// glyph's rune.
func breakAllowed(layout *textline.LineLayout, runIx, glyphIx int, class breakClass, mode Mode) bool {
	if mode == ModeChar {
		return true
	}
	if class == classIdeographic {
		return true
	}
	prev := prevGlyph(layout, runIx, glyphIx)
	if prev == nil {
		return false
	}
	switch classify(runeAt(layout.Text, prev.Index)) {
	case classSpace, classHyphen, classIdeographic:
		// Rows never start on a space itself.
		return class != classSpace
	}
	return false
}

// prevGlyph returns the glyph before (runIx, glyphIx) in layout order, or
// nil at the start of the layout.
func prevGlyph(layout *textline.LineLayout, runIx, glyphIx int) *textline.ShapedGlyph {
	if glyphIx > 0 {
		return &layout.Runs[runIx].Glyphs[glyphIx-1]
	}
	for i := runIx - 1; i >= 0; i-- {
		glyphs := layout.Runs[i].Glyphs
		if len(glyphs) > 0 {
			return &glyphs[len(glyphs)-1]
		}
	}
	return nil
}

// glyphRight returns the right edge of the glyph at (runIx, glyphIx): the
// next glyph's position, or the layout width for the last glyph.
func glyphRight(layout *textline.LineLayout, runIx, glyphIx int) float64 {
	if glyphIx+1 < len(layout.Runs[runIx].Glyphs) {
		return layout.Runs[runIx].Glyphs[glyphIx+1].Position.X
	}
	for i := runIx + 1; i < len(layout.Runs); i++ {
		if len(layout.Runs[i].Glyphs) > 0 {
			return layout.Runs[i].Glyphs[0].Position.X
		}
	}
	return layout.Width
}

// runeAt decodes the rune starting at byte offset i of text.
func runeAt(text string, i int) rune {
	if i < 0 || i >= len(text) {
		return 0
	}
	for _, r := range text[i:] {
		return r
	}
	return 0
}

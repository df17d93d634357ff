package textline

import "fmt"

// activeUnderline accumulates one underline span while the glyph walk is
// inside it: the stroke's starting point and its resolved style. Spans
// extend silently while consecutive decoration runs resolve to the same
// style and are flushed as a single PaintUnderline call when the style
// changes, the decorations run out, or the line (or visual row) ends.
type activeUnderline struct {
	origin Point
	style  UnderlineStyle
}

// decorationCursor walks a Line's decoration runs in lockstep with the
// glyph walk. It tracks the byte offset at which the current run ends, the
// current fill color, and the underline span being accumulated.
type decorationCursor struct {
	runs   []DecorationRun
	runEnd int
	color  Hsla
	active *activeUnderline
}

func newDecorationCursor(runs []DecorationRun) decorationCursor {
	return decorationCursor{runs: runs, color: Black()}
}

// advance moves to the next decoration run once a glyph's byte index has
// reached the end of the current one. It returns a finished underline span
// to flush, or nil. underlineOrigin is where a newly started span would
// begin. When the runs are exhausted an implicit run with default styling
// covers the remaining textLen bytes.
func (c *decorationCursor) advance(underlineOrigin Point, textLen int) *activeUnderline {
	var finished *activeUnderline

	if len(c.runs) == 0 {
		c.runEnd = textLen
		c.color = Black()
		finished = c.active
		c.active = nil
		return finished
	}

	run := c.runs[0]
	c.runs = c.runs[1:]

	var resolved *UnderlineStyle
	if run.Underline != nil {
		r := run.Underline.resolve(run.Color)
		resolved = &r
	}

	if c.active != nil && (resolved == nil || !resolved.Equal(c.active.style)) {
		finished = c.active
		c.active = nil
	}
	if resolved != nil && c.active == nil {
		c.active = &activeUnderline{origin: underlineOrigin, style: *resolved}
	}

	c.runEnd += run.Len
	c.color = run.Color
	return finished
}

// Paint renders the line as one visual row into bounds, culling glyphs
// outside visibleBounds horizontally. The baseline is vertically centered
// within lineHeight.
//
// Every visible glyph produces exactly one glyph or emoji draw call with
// the color of the decoration run covering its byte index, and every
// maximal run of glyphs sharing one resolved underline style produces
// exactly one underline call. The first renderer failure aborts the paint.
func (l Line) Paint(rc RenderContext, bounds, visibleBounds Bounds, lineHeight float64) error {
	layout := l.layout
	origin := bounds.Origin
	paddingTop := (lineHeight - layout.Ascent - layout.Descent) / 2
	baselineOffset := Pt(0, paddingTop+layout.Ascent)
	underlineY := origin.Y + baselineOffset.Y + layout.Descent*0.618

	cursor := newDecorationCursor(l.decorations)

glyphs:
	for _, run := range layout.Runs {
		box, err := rc.BoundingBox(run.FontID, layout.FontSize)
		if err != nil {
			return fmt.Errorf("textline: bounding box for font %d: %w", run.FontID, err)
		}
		maxGlyphWidth := box.Width

		for _, glyph := range run.Glyphs {
			glyphOrigin := origin.Add(baselineOffset).Add(glyph.Position)

			// Glyphs are x-ordered; nothing past the right edge is
			// visible. The trailing flush below still runs.
			if glyphOrigin.X > visibleBounds.UpperRight().X {
				break glyphs
			}

			if glyph.Index >= cursor.runEnd {
				finished := cursor.advance(Pt(glyphOrigin.X, underlineY), len(layout.Text))
				if finished != nil {
					err := rc.PaintUnderline(finished.origin, glyphOrigin.X-finished.origin.X, finished.style)
					if err != nil {
						return err
					}
				}
			}

			// Left of the visible window: style bookkeeping above still
			// happened, only the draw call is skipped.
			if glyphOrigin.X+maxGlyphWidth < visibleBounds.Origin.X {
				continue
			}

			if glyph.IsEmoji {
				err = rc.PaintEmoji(glyphOrigin, run.FontID, glyph.ID, layout.FontSize)
			} else {
				err = rc.PaintGlyph(glyphOrigin, run.FontID, glyph.ID, layout.FontSize, cursor.color)
			}
			if err != nil {
				return err
			}
		}
	}

	if cursor.active != nil {
		lineEndX := origin.X + layout.Width
		err := rc.PaintUnderline(cursor.active.origin, lineEndX-cursor.active.origin.X, cursor.active.style)
		if err != nil {
			return err
		}
	}

	return nil
}

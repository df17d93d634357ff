package textline

import "fmt"

// PaintWrapped renders the line as multiple visual rows. Each boundary in
// boundaries marks the glyph that starts a new row: the draw origin's x
// resets to origin.X and its y advances by lineHeight. Boundaries must be
// ordered ascending by (RunIndex, GlyphIndex).
//
// Decoration bookkeeping and underline merging behave exactly as in
// [Line.Paint]; an underline span crossing a boundary is flushed at the
// wrap point, and the stroke resumes with the next decoration run that
// requests one. Glyphs are drawn when their bounding box intersects
// visibleBounds.
func (l Line) PaintWrapped(rc RenderContext, origin Point, visibleBounds Bounds, lineHeight float64, boundaries []ShapedBoundary) error {
	layout := l.layout
	paddingTop := (lineHeight - layout.Ascent - layout.Descent) / 2
	baselineOffset := Pt(0, paddingTop+layout.Ascent)

	cursor := newDecorationCursor(l.decorations)

	// The draw origin advances by per-glyph position deltas rather than
	// absolute positions, because x restarts at each row while layout
	// positions keep accumulating.
	glyphOrigin := origin
	prevPosition := 0.0
	nextBoundary := 0

	for runIx, run := range layout.Runs {
		for glyphIx, glyph := range run.Glyphs {
			glyphOrigin.X += glyph.Position.X - prevPosition

			if nextBoundary < len(boundaries) &&
				boundaries[nextBoundary].RunIndex == runIx &&
				boundaries[nextBoundary].GlyphIndex == glyphIx {
				nextBoundary++
				if cursor.active != nil {
					active := cursor.active
					cursor.active = nil
					err := rc.PaintUnderline(active.origin, glyphOrigin.X-active.origin.X, active.style)
					if err != nil {
						return err
					}
				}
				glyphOrigin = Pt(origin.X, glyphOrigin.Y+lineHeight)
			}
			prevPosition = glyph.Position.X

			if glyph.Index >= cursor.runEnd {
				underlineOrigin := Pt(glyphOrigin.X, glyphOrigin.Y+baselineOffset.Y+layout.Descent*0.618)
				finished := cursor.advance(underlineOrigin, len(layout.Text))
				if finished != nil {
					err := rc.PaintUnderline(finished.origin, glyphOrigin.X-finished.origin.X, finished.style)
					if err != nil {
						return err
					}
				}
			}

			box, err := rc.BoundingBox(run.FontID, layout.FontSize)
			if err != nil {
				return fmt.Errorf("textline: bounding box for font %d: %w", run.FontID, err)
			}
			glyphBounds := Bounds{Origin: glyphOrigin, Size: box}
			if glyphBounds.Intersects(visibleBounds) {
				drawOrigin := glyphOrigin.Add(baselineOffset)
				if glyph.IsEmoji {
					err = rc.PaintEmoji(drawOrigin, run.FontID, glyph.ID, layout.FontSize)
				} else {
					err = rc.PaintGlyph(drawOrigin, run.FontID, glyph.ID, layout.FontSize, cursor.color)
				}
				if err != nil {
					return err
				}
			}
		}
	}

	if cursor.active != nil {
		lineEndX := glyphOrigin.X + layout.Width - prevPosition
		err := rc.PaintUnderline(cursor.active.origin, lineEndX-cursor.active.origin.X, cursor.active.style)
		if err != nil {
			return err
		}
	}

	return nil
}

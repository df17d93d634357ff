// Package textline paints one already-shaped line of text.
//
// The package sits between a text shaper and a rasterizing renderer:
// a shaper produces an immutable [LineLayout] of positioned glyphs, the
// caller attaches a run-length-encoded sequence of [DecorationRun] values
// (fill color plus optional underline), and [Line.Paint] or
// [Line.PaintWrapped] walks both sequences in lockstep, emitting a minimal
// set of draw calls on a [RenderContext].
//
// # Pipeline
//
//   - shaper/: shapes text into a LineLayout (HarfBuzz via go-text/typesetting)
//   - cache/: memoizes shaped layouts behind shaper.NewCached
//   - textline: Line queries and the two paint algorithms
//   - wrap/: computes the ShapedBoundary sequence for multi-row painting
//   - recording/: a RenderContext that records draw commands for replay
//   - render/: a software target replaying recordings into an image
//
// # Example usage
//
//	sh := shaper.New()
//	fontID, err := sh.LoadFont(fontData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout, err := sh.ShapeLine("Hello", fontID, 14)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	line := textline.NewLine(layout, []textline.DecorationRun{
//	    {Len: layout.Len(), Color: textline.Black()},
//	})
//	err = line.Paint(renderCtx, bounds, visibleBounds, 20)
//
// A LineLayout is immutable after shaping and may be shared by any number
// of Lines (the same text styled differently); a Line owns its decoration
// sequence by value and is itself immutable after construction.
//
// All operations are synchronous and single-threaded: a paint call runs to
// completion on the caller's goroutine or fails outright when the renderer
// rejects a primitive. Queries never fail; out-of-range inputs resolve to
// boundary values.
package textline

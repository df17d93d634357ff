package textline

// RenderContext is the rendering backend the paint algorithms draw
// through. Implementations rasterize or record the primitives; this
// package only decides what to emit and where.
//
// All four calls are synchronous and may fail. A failure aborts the
// current paint immediately and propagates to the caller; a partially
// painted line may result and the caller decides whether to repaint the
// whole line, drop the frame, or escalate. Nothing is retried here.
type RenderContext interface {
	// BoundingBox returns the union of glyph bounding boxes for the font
	// at the given size. The paint algorithms use its width as the widest
	// possible glyph when culling at the visible window's left edge.
	BoundingBox(fontID FontID, fontSize float64) (Size, error)

	// PaintGlyph draws one glyph at origin with the given fill color.
	PaintGlyph(origin Point, fontID FontID, glyphID GlyphID, fontSize float64, color Hsla) error

	// PaintEmoji draws one emoji glyph at origin. Emoji carry their own
	// colors, so no fill color is passed.
	PaintEmoji(origin Point, fontID FontID, glyphID GlyphID, fontSize float64) error

	// PaintUnderline draws a horizontal underline stroke starting at
	// origin and extending length pixels to the right. The style's color
	// is always resolved (non-nil) by the time it reaches the renderer.
	PaintUnderline(origin Point, length float64, style UnderlineStyle) error
}

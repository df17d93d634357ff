// Package recording provides a textline.RenderContext that captures draw
// calls as typed commands instead of rasterizing pixels.
//
// A Recorder stands in for a real renderer: the paint algorithms emit
// glyph, emoji, and underline primitives into it, and the resulting
// Recording can be inspected or replayed against any Target backend
// (raster, PDF, a GPU command encoder). Typed command structs are used
// rather than a binary encoding for inspectability.
package recording

import "github.com/gogpu/textline"

// CommandType identifies the draw primitive a command carries.
type CommandType uint8

const (
	// CmdGlyph is a single glyph drawn with a fill color.
	CmdGlyph CommandType = iota
	// CmdEmoji is a single emoji glyph; emoji carry their own colors.
	CmdEmoji
	// CmdUnderline is a horizontal underline stroke.
	CmdUnderline
)

// String returns the string representation of the command type.
func (t CommandType) String() string {
	switch t {
	case CmdGlyph:
		return "Glyph"
	case CmdEmoji:
		return "Emoji"
	case CmdUnderline:
		return "Underline"
	default:
		return "Unknown"
	}
}

// Command is one recorded draw call. Fields beyond Type and Origin are
// populated according to the command type.
type Command struct {
	// Type selects which primitive this command represents.
	Type CommandType

	// Origin is the draw position: glyph origin for CmdGlyph/CmdEmoji,
	// stroke start for CmdUnderline.
	Origin textline.Point

	// FontID and GlyphID identify the drawn glyph (CmdGlyph, CmdEmoji).
	FontID  textline.FontID
	GlyphID textline.GlyphID

	// FontSize is the size in pixels (CmdGlyph, CmdEmoji).
	FontSize float64

	// Color is the fill color (CmdGlyph only).
	Color textline.Hsla

	// Length is the stroke length in pixels (CmdUnderline only).
	Length float64

	// Underline is the resolved stroke style (CmdUnderline only).
	Underline textline.UnderlineStyle
}

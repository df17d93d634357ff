package textline_test

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/textline"
	"github.com/gogpu/textline/recording"
)

func TestPaintWrappedRowBreak(t *testing.T) {
	// "ab" broken after 'a': row 0 holds 'a' at x=0, row 1 holds 'b'
	// reset to x=0 one line height down.
	line := textline.NewLine(shapeFixed("ab"), []textline.DecorationRun{
		{Len: 2, Color: red},
	})
	rec := newTestRecorder()

	boundaries := []textline.ShapedBoundary{{RunIndex: 0, GlyphIndex: 1}}
	err := line.PaintWrapped(rec, textline.Pt(0, 0), wideBounds, testLineHeight, boundaries)
	if err != nil {
		t.Fatalf("PaintWrapped() error: %v", err)
	}

	glyphs := commandsOfType(rec.Commands(), recording.CmdGlyph)
	if len(glyphs) != 2 {
		t.Fatalf("got %d glyph commands, want 2", len(glyphs))
	}
	if glyphs[0].Origin != textline.Pt(0, testBaselineY) {
		t.Errorf("row 0 glyph origin = %+v, want {0 %v}", glyphs[0].Origin, testBaselineY)
	}
	if glyphs[1].Origin != textline.Pt(0, testLineHeight+testBaselineY) {
		t.Errorf("row 1 glyph origin = %+v, want {0 %v}", glyphs[1].Origin, testLineHeight+testBaselineY)
	}
}

func TestPaintWrappedRowsPerBoundary(t *testing.T) {
	// N boundaries produce N+1 rows, each starting at the destination's
	// left edge with y advanced by one line height per row.
	line := textline.NewLine(shapeFixed("abc"), []textline.DecorationRun{
		{Len: 3, Color: red},
	})
	rec := newTestRecorder()

	origin := textline.Pt(5, 7)
	boundaries := []textline.ShapedBoundary{
		{RunIndex: 0, GlyphIndex: 1},
		{RunIndex: 0, GlyphIndex: 2},
	}
	err := line.PaintWrapped(rec, origin, wideBounds, testLineHeight, boundaries)
	if err != nil {
		t.Fatalf("PaintWrapped() error: %v", err)
	}

	glyphs := commandsOfType(rec.Commands(), recording.CmdGlyph)
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyph commands, want 3", len(glyphs))
	}
	for row, cmd := range glyphs {
		want := textline.Pt(origin.X, origin.Y+float64(row)*testLineHeight+testBaselineY)
		if cmd.Origin != want {
			t.Errorf("row %d glyph origin = %+v, want %+v", row, cmd.Origin, want)
		}
	}
}

func TestPaintWrappedUnderlineFlushAtBoundary(t *testing.T) {
	// An underline spanning a wrap boundary is flushed at the wrap point.
	line := textline.NewLine(shapeFixed("ab"), []textline.DecorationRun{
		{Len: 2, Color: red, Underline: &textline.UnderlineStyle{Thickness: 1}},
	})
	rec := newTestRecorder()

	boundaries := []textline.ShapedBoundary{{RunIndex: 0, GlyphIndex: 1}}
	err := line.PaintWrapped(rec, textline.Pt(0, 0), wideBounds, testLineHeight, boundaries)
	if err != nil {
		t.Fatalf("PaintWrapped() error: %v", err)
	}

	underlines := commandsOfType(rec.Commands(), recording.CmdUnderline)
	if len(underlines) != 1 {
		t.Fatalf("got %d underline commands, want 1", len(underlines))
	}
	u := underlines[0]
	if u.Origin.X != 0 || u.Length != 10 {
		t.Errorf("underline from %v length %v, want from 0 length 10", u.Origin.X, u.Length)
	}
	if math.Abs(u.Origin.Y-underlineY(0)) > 1e-9 {
		t.Errorf("underline y = %v, want %v", u.Origin.Y, underlineY(0))
	}
}

func TestPaintWrappedUnderlineEndFlush(t *testing.T) {
	// Without boundaries the trailing flush covers the remaining width of
	// the final row.
	line := textline.NewLine(shapeFixed("ab"), []textline.DecorationRun{
		{Len: 2, Color: red, Underline: &textline.UnderlineStyle{Thickness: 1}},
	})
	rec := newTestRecorder()

	err := line.PaintWrapped(rec, textline.Pt(0, 0), wideBounds, testLineHeight, nil)
	if err != nil {
		t.Fatalf("PaintWrapped() error: %v", err)
	}

	underlines := commandsOfType(rec.Commands(), recording.CmdUnderline)
	if len(underlines) != 1 {
		t.Fatalf("got %d underline commands, want 1", len(underlines))
	}
	if underlines[0].Length != 20 {
		t.Errorf("underline length = %v, want 20 (full line width)", underlines[0].Length)
	}
}

func TestPaintWrappedUnderlineStyleSplit(t *testing.T) {
	// Same merge/split rules as the single-row path.
	line := textline.NewLine(shapeFixed("ab"), []textline.DecorationRun{
		{Len: 1, Color: red, Underline: &textline.UnderlineStyle{Thickness: 1}},
		{Len: 1, Color: blue, Underline: &textline.UnderlineStyle{Thickness: 1}},
	})
	rec := newTestRecorder()

	err := line.PaintWrapped(rec, textline.Pt(0, 0), wideBounds, testLineHeight, nil)
	if err != nil {
		t.Fatalf("PaintWrapped() error: %v", err)
	}

	underlines := commandsOfType(rec.Commands(), recording.CmdUnderline)
	if len(underlines) != 2 {
		t.Fatalf("got %d underline commands, want 2", len(underlines))
	}
	if underlines[0].Origin.X != 0 || underlines[0].Length != 10 {
		t.Errorf("first span = (%v, %v), want (0, 10)", underlines[0].Origin.X, underlines[0].Length)
	}
	if underlines[1].Origin.X != 10 || underlines[1].Length != 10 {
		t.Errorf("second span = (%v, %v), want (10, 10)", underlines[1].Origin.X, underlines[1].Length)
	}
}

func TestPaintWrappedCullsInvisibleRows(t *testing.T) {
	// Only row 0 is inside the window; row 1's glyph box starts exactly
	// at the window's bottom edge and is culled.
	line := textline.NewLine(shapeFixed("ab"), []textline.DecorationRun{
		{Len: 2, Color: red},
	})
	rec := newTestRecorder()

	visible := textline.Bounds{Origin: textline.Pt(0, 0), Size: textline.Size{Width: 100, Height: testLineHeight}}
	boundaries := []textline.ShapedBoundary{{RunIndex: 0, GlyphIndex: 1}}
	err := line.PaintWrapped(rec, textline.Pt(0, 0), visible, testLineHeight, boundaries)
	if err != nil {
		t.Fatalf("PaintWrapped() error: %v", err)
	}

	glyphs := commandsOfType(rec.Commands(), recording.CmdGlyph)
	if len(glyphs) != 1 {
		t.Fatalf("got %d glyph commands, want 1 (second row culled)", len(glyphs))
	}
	if glyphs[0].Origin.Y != testBaselineY {
		t.Errorf("visible glyph y = %v, want %v", glyphs[0].Origin.Y, testBaselineY)
	}
}

func TestPaintWrappedEmojiDispatch(t *testing.T) {
	layout := shapeFixed("ab")
	layout.Runs[0].Glyphs[0].IsEmoji = true
	line := textline.NewLine(layout, []textline.DecorationRun{{Len: 2, Color: red}})
	rec := newTestRecorder()

	err := line.PaintWrapped(rec, textline.Pt(0, 0), wideBounds, testLineHeight, nil)
	if err != nil {
		t.Fatalf("PaintWrapped() error: %v", err)
	}

	cmds := rec.Commands()
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if cmds[0].Type != recording.CmdEmoji || cmds[1].Type != recording.CmdGlyph {
		t.Errorf("command types = %v, %v; want Emoji, Glyph", cmds[0].Type, cmds[1].Type)
	}
}

func TestPaintWrappedUnknownFontAborts(t *testing.T) {
	line := textline.NewLine(shapeFixed("ab"), []textline.DecorationRun{{Len: 2, Color: red}})
	rec := recording.NewRecorder() // testFont never registered

	err := line.PaintWrapped(rec, textline.Pt(0, 0), wideBounds, testLineHeight, nil)
	var unknown *recording.UnknownFontError
	if !errors.As(err, &unknown) {
		t.Fatalf("PaintWrapped() error = %v, want UnknownFontError", err)
	}
}

func TestPaintWrappedDrawFailureAborts(t *testing.T) {
	line := textline.NewLine(shapeFixed("abc"), []textline.DecorationRun{{Len: 3, Color: red}})
	rec := newTestRecorder()
	rec.FailAfter(2)

	err := line.PaintWrapped(rec, textline.Pt(0, 0), wideBounds, testLineHeight, nil)
	if !errors.Is(err, recording.ErrDrawRejected) {
		t.Fatalf("PaintWrapped() error = %v, want ErrDrawRejected", err)
	}
	if got := len(rec.Commands()); got != 2 {
		t.Errorf("got %d commands after abort, want 2", got)
	}
}

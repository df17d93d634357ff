package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/textline"
)

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdGlyph, "Glyph"},
		{CmdEmoji, "Emoji"},
		{CmdUnderline, "Underline"},
		{CommandType(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("CommandType(%d).String() = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestRecorderBoundingBox(t *testing.T) {
	rec := NewRecorder()
	rec.RegisterFont(3, textline.Size{Width: 0.5, Height: 1.2})

	box, err := rec.BoundingBox(3, 10)
	if err != nil {
		t.Fatalf("BoundingBox() error: %v", err)
	}
	if box.Width != 5 || box.Height != 12 {
		t.Errorf("BoundingBox() = %+v, want {5 12}", box)
	}

	_, err = rec.BoundingBox(4, 10)
	var unknown *UnknownFontError
	if !errors.As(err, &unknown) {
		t.Fatalf("BoundingBox() error = %v, want UnknownFontError", err)
	}
	if unknown.FontID != 4 {
		t.Errorf("UnknownFontError.FontID = %v, want 4", unknown.FontID)
	}
}

func TestRecorderRecordsCommands(t *testing.T) {
	rec := NewRecorder()
	red := textline.Hsla{H: 0, S: 1, L: 0.5, A: 1}

	if err := rec.PaintGlyph(textline.Pt(1, 2), 3, 4, 14, red); err != nil {
		t.Fatalf("PaintGlyph() error: %v", err)
	}
	if err := rec.PaintEmoji(textline.Pt(5, 6), 3, 7, 14); err != nil {
		t.Fatalf("PaintEmoji() error: %v", err)
	}
	style := textline.UnderlineStyle{Color: &red, Thickness: 1, Wavy: true}
	if err := rec.PaintUnderline(textline.Pt(0, 9), 25, style); err != nil {
		t.Fatalf("PaintUnderline() error: %v", err)
	}

	cmds := rec.Commands()
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}

	if cmds[0].Type != CmdGlyph || cmds[0].GlyphID != 4 || cmds[0].Color != red {
		t.Errorf("glyph command = %+v", cmds[0])
	}
	if cmds[1].Type != CmdEmoji || cmds[1].GlyphID != 7 {
		t.Errorf("emoji command = %+v", cmds[1])
	}
	if cmds[2].Type != CmdUnderline || cmds[2].Length != 25 || !cmds[2].Underline.Wavy {
		t.Errorf("underline command = %+v", cmds[2])
	}
}

func TestRecorderFailAfter(t *testing.T) {
	rec := NewRecorder()
	rec.FailAfter(1)

	if err := rec.PaintGlyph(textline.Pt(0, 0), 1, 1, 14, textline.Black()); err != nil {
		t.Fatalf("first draw failed early: %v", err)
	}
	err := rec.PaintGlyph(textline.Pt(0, 0), 1, 2, 14, textline.Black())
	if !errors.Is(err, ErrDrawRejected) {
		t.Fatalf("second draw error = %v, want ErrDrawRejected", err)
	}
	if len(rec.Commands()) != 1 {
		t.Errorf("got %d commands, want 1", len(rec.Commands()))
	}

	// Negative clears the injection.
	rec.FailAfter(-1)
	if err := rec.PaintGlyph(textline.Pt(0, 0), 1, 3, 14, textline.Black()); err != nil {
		t.Errorf("draw after clearing injection failed: %v", err)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.RegisterFont(1, textline.Size{Width: 1, Height: 1})
	_ = rec.PaintGlyph(textline.Pt(0, 0), 1, 1, 14, textline.Black())

	rec.Reset()
	if len(rec.Commands()) != 0 {
		t.Errorf("commands remain after Reset: %d", len(rec.Commands()))
	}
	if _, err := rec.BoundingBox(1, 14); err != nil {
		t.Errorf("registered font lost on Reset: %v", err)
	}
}

// replayTarget collects replayed commands, optionally failing.
type replayTarget struct {
	format gputypes.TextureFormat
	got    []Command
	fail   bool
}

func (t *replayTarget) Format() gputypes.TextureFormat { return t.format }

func (t *replayTarget) Glyph(cmd Command) error { return t.accept(cmd) }
func (t *replayTarget) Emoji(cmd Command) error { return t.accept(cmd) }
func (t *replayTarget) Underline(cmd Command) error {
	return t.accept(cmd)
}

func (t *replayTarget) accept(cmd Command) error {
	if t.fail {
		return errors.New("target rejected command")
	}
	t.got = append(t.got, cmd)
	return nil
}

func TestRecordingPlayback(t *testing.T) {
	rec := NewRecorder()
	_ = rec.PaintGlyph(textline.Pt(0, 0), 1, 1, 14, textline.Black())
	_ = rec.PaintEmoji(textline.Pt(10, 0), 1, 2, 14)
	_ = rec.PaintUnderline(textline.Pt(0, 16), 20, textline.UnderlineStyle{Thickness: 1})
	recording := rec.Finish()

	if len(rec.Commands()) != 0 {
		t.Errorf("recorder retained commands after Finish: %d", len(rec.Commands()))
	}

	target := &replayTarget{format: gputypes.TextureFormatRGBA8Unorm}
	if err := recording.Playback(target); err != nil {
		t.Fatalf("Playback() error: %v", err)
	}
	if len(target.got) != 3 {
		t.Fatalf("target received %d commands, want 3", len(target.got))
	}
	wantTypes := []CommandType{CmdGlyph, CmdEmoji, CmdUnderline}
	for i, cmd := range target.got {
		if cmd.Type != wantTypes[i] {
			t.Errorf("replayed command %d type = %v, want %v", i, cmd.Type, wantTypes[i])
		}
	}
}

func TestRecordingPlaybackNoFormat(t *testing.T) {
	rec := NewRecorder()
	_ = rec.PaintGlyph(textline.Pt(0, 0), 1, 1, 14, textline.Black())
	recording := rec.Finish()

	target := &replayTarget{format: gputypes.TextureFormatUndefined}
	if err := recording.Playback(target); !errors.Is(err, ErrNoTargetFormat) {
		t.Fatalf("Playback() error = %v, want ErrNoTargetFormat", err)
	}
}

func TestRecordingPlaybackStopsOnError(t *testing.T) {
	rec := NewRecorder()
	_ = rec.PaintGlyph(textline.Pt(0, 0), 1, 1, 14, textline.Black())
	_ = rec.PaintGlyph(textline.Pt(10, 0), 1, 2, 14, textline.Black())
	recording := rec.Finish()

	target := &replayTarget{format: gputypes.TextureFormatRGBA8Unorm, fail: true}
	if err := recording.Playback(target); err == nil {
		t.Fatal("Playback() succeeded with a rejecting target")
	}
	if len(target.got) != 0 {
		t.Errorf("target accepted %d commands, want 0", len(target.got))
	}
}

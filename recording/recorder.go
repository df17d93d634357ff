package recording

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/textline"
)

// Recorder implements textline.RenderContext by appending commands to an
// in-memory list. Use Finish to obtain an immutable Recording for replay.
//
// Fonts must be registered before painting: BoundingBox answers from the
// registered per-em boxes scaled by the requested size, and an
// unregistered font yields an UnknownFontError, which the paint
// algorithms propagate as an aborted paint.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	boxes    map[textline.FontID]textline.Size
	commands []Command

	// failAfter counts down remaining successful draw calls when >= 0;
	// the call that hits zero fails with ErrDrawRejected.
	failAfter int
}

var _ textline.RenderContext = (*Recorder)(nil)

// NewRecorder creates an empty recorder with no registered fonts and no
// injected failures.
func NewRecorder() *Recorder {
	return &Recorder{
		boxes:     make(map[textline.FontID]textline.Size),
		failAfter: -1,
	}
}

// RegisterFont registers the font's bounding box per em unit. BoundingBox
// scales it by the requested font size.
func (r *Recorder) RegisterFont(id textline.FontID, unitBox textline.Size) {
	r.boxes[id] = unitBox
}

// FailAfter injects a draw failure: the next n draw calls succeed and the
// one after fails with ErrDrawRejected. Used to exercise abort semantics.
// Pass a negative n to clear the injection.
func (r *Recorder) FailAfter(n int) {
	r.failAfter = n
}

// BoundingBox implements textline.RenderContext.
func (r *Recorder) BoundingBox(fontID textline.FontID, fontSize float64) (textline.Size, error) {
	box, ok := r.boxes[fontID]
	if !ok {
		return textline.Size{}, &UnknownFontError{FontID: fontID}
	}
	return textline.Size{Width: box.Width * fontSize, Height: box.Height * fontSize}, nil
}

// PaintGlyph implements textline.RenderContext.
func (r *Recorder) PaintGlyph(origin textline.Point, fontID textline.FontID, glyphID textline.GlyphID, fontSize float64, color textline.Hsla) error {
	if err := r.countDraw(); err != nil {
		return err
	}
	r.commands = append(r.commands, Command{
		Type:     CmdGlyph,
		Origin:   origin,
		FontID:   fontID,
		GlyphID:  glyphID,
		FontSize: fontSize,
		Color:    color,
	})
	return nil
}

// PaintEmoji implements textline.RenderContext.
func (r *Recorder) PaintEmoji(origin textline.Point, fontID textline.FontID, glyphID textline.GlyphID, fontSize float64) error {
	if err := r.countDraw(); err != nil {
		return err
	}
	r.commands = append(r.commands, Command{
		Type:     CmdEmoji,
		Origin:   origin,
		FontID:   fontID,
		GlyphID:  glyphID,
		FontSize: fontSize,
	})
	return nil
}

// PaintUnderline implements textline.RenderContext.
func (r *Recorder) PaintUnderline(origin textline.Point, length float64, style textline.UnderlineStyle) error {
	if err := r.countDraw(); err != nil {
		return err
	}
	r.commands = append(r.commands, Command{
		Type:      CmdUnderline,
		Origin:    origin,
		Length:    length,
		Underline: style,
	})
	return nil
}

// countDraw applies the injected failure point, if any.
func (r *Recorder) countDraw() error {
	if r.failAfter < 0 {
		return nil
	}
	if r.failAfter == 0 {
		return ErrDrawRejected
	}
	r.failAfter--
	return nil
}

// Commands returns the commands recorded so far. The returned slice is
// owned by the recorder; callers must not modify it.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards recorded commands but keeps registered fonts.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.failAfter = -1
}

// Finish returns an immutable Recording of the commands so far and resets
// the recorder for reuse.
func (r *Recorder) Finish() Recording {
	rec := Recording{commands: r.commands}
	r.commands = nil
	r.failAfter = -1
	return rec
}

// Recording is an immutable sequence of recorded draw commands.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands. The returned slice must not be
// modified.
func (r Recording) Commands() []Command {
	return r.commands
}

// Target is a backend that a Recording can be replayed to. Targets declare
// the texture format of their output surface; a target without one (for
// example a not-yet-configured GPU surface) cannot accept a replay.
type Target interface {
	// Format returns the target surface's texture format.
	Format() gputypes.TextureFormat

	// Glyph, Emoji, and Underline receive the corresponding commands in
	// recorded order. Any error stops the replay.
	Glyph(cmd Command) error
	Emoji(cmd Command) error
	Underline(cmd Command) error
}

// Playback replays the recording against a target in recorded order. It
// fails with ErrNoTargetFormat when the target declares no surface format,
// and stops on the first command the target rejects.
func (r Recording) Playback(t Target) error {
	if t.Format() == gputypes.TextureFormatUndefined {
		return ErrNoTargetFormat
	}
	for _, cmd := range r.commands {
		var err error
		switch cmd.Type {
		case CmdGlyph:
			err = t.Glyph(cmd)
		case CmdEmoji:
			err = t.Emoji(cmd)
		case CmdUnderline:
			err = t.Underline(cmd)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

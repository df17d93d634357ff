package recording

import (
	"errors"
	"strconv"

	"github.com/gogpu/textline"
)

// Sentinel errors for the recording package.
var (
	// ErrDrawRejected is returned by a draw primitive once an injected
	// failure point is reached. See Recorder.FailAfter.
	ErrDrawRejected = errors.New("recording: draw call rejected")

	// ErrNoTargetFormat is returned by Recording.Playback when the target
	// does not declare a surface format.
	ErrNoTargetFormat = errors.New("recording: target has no surface format")
)

// UnknownFontError is returned by Recorder.BoundingBox for a font that was
// never registered with the recorder.
type UnknownFontError struct {
	FontID textline.FontID
}

func (e *UnknownFontError) Error() string {
	return "recording: unknown font " + strconv.FormatUint(uint64(e.FontID), 10)
}

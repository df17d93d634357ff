// Package render provides software targets that recordings replay into.
//
// ImageTarget rasterizes a recording into an in-memory image: underlines
// as real strokes (straight or wavy), glyphs and emoji as their ink boxes.
// Glyph outlines are a renderer concern; the boxes make the target useful
// for layout previews and golden-image tests without a font rasterizer.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/textline"
	"github.com/gogpu/textline/recording"
)

// emojiTint fills emoji ink boxes; emoji carry their own colors, which a
// box cannot show.
var emojiTint = color.NRGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF}

// ImageTarget replays a recording into an *image.NRGBA.
//
// Fonts must be registered with their per-em boxes, the same way a
// recording.Recorder is set up; an unregistered font stops the replay
// with an UnknownFontError. Not safe for concurrent use.
type ImageTarget struct {
	img   *image.NRGBA
	boxes map[textline.FontID]textline.Size
}

var _ recording.Target = (*ImageTarget)(nil)

// NewImageTarget creates a transparent target of the given size.
// Dimensions below 1 are clamped to 1.
func NewImageTarget(width, height int) *ImageTarget {
	width = max(width, 1)
	height = max(height, 1)
	return &ImageTarget{
		img:   image.NewNRGBA(image.Rect(0, 0, width, height)),
		boxes: make(map[textline.FontID]textline.Size),
	}
}

// RegisterFont registers the font's bounding box per em unit, scaled by
// each command's font size when drawing.
func (t *ImageTarget) RegisterFont(id textline.FontID, unitBox textline.Size) {
	t.boxes[id] = unitBox
}

// Image returns the target's backing image. The target keeps drawing into
// it on subsequent replays.
func (t *ImageTarget) Image() *image.NRGBA {
	return t.img
}

// Clear resets every pixel to transparent.
func (t *ImageTarget) Clear() {
	draw.Draw(t.img, t.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// Format implements recording.Target.
func (t *ImageTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Glyph implements recording.Target. The ink box is anchored above the
// baseline origin; descenders are not modeled.
func (t *ImageTarget) Glyph(cmd recording.Command) error {
	box, err := t.inkBox(cmd)
	if err != nil {
		return err
	}
	t.fillRect(cmd.Origin.X, cmd.Origin.Y-box.Height, box.Width, box.Height,
		cmd.Color.RGBA().Color())
	return nil
}

// Emoji implements recording.Target.
func (t *ImageTarget) Emoji(cmd recording.Command) error {
	box, err := t.inkBox(cmd)
	if err != nil {
		return err
	}
	t.fillRect(cmd.Origin.X, cmd.Origin.Y-box.Height, box.Width, box.Height, emojiTint)
	return nil
}

// Underline implements recording.Target.
func (t *ImageTarget) Underline(cmd recording.Command) error {
	style := cmd.Underline
	col := style.Color.RGBA().Color()
	thickness := max(style.Thickness, 1)

	if !style.Wavy {
		t.fillRect(cmd.Origin.X, cmd.Origin.Y, cmd.Length, thickness, col)
		return nil
	}

	// One sine period spans eight thicknesses, amplitude one thickness.
	wavelength := thickness * 8
	for dx := 0.0; dx < cmd.Length; dx++ {
		offset := thickness * math.Sin(2*math.Pi*dx/wavelength)
		t.fillRect(cmd.Origin.X+dx, cmd.Origin.Y+offset, 1, thickness, col)
	}
	return nil
}

// inkBox scales the registered per-em box by the command's font size.
func (t *ImageTarget) inkBox(cmd recording.Command) (textline.Size, error) {
	box, ok := t.boxes[cmd.FontID]
	if !ok {
		return textline.Size{}, &recording.UnknownFontError{FontID: cmd.FontID}
	}
	return textline.Size{
		Width:  box.Width * cmd.FontSize,
		Height: box.Height * cmd.FontSize,
	}, nil
}

// fillRect fills an axis-aligned rectangle with src-over blending.
// draw.Draw clips against the image bounds.
func (t *ImageTarget) fillRect(x, y, w, h float64, col color.Color) {
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	draw.Draw(t.img, rect, image.NewUniform(col), image.Point{}, draw.Over)
}

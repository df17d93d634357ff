// Package shaper turns raw text and a font into the positioned-glyph
// layouts consumed by textline. Shaping uses HarfBuzz via
// go-text/typesetting; font metrics come from golang.org/x/image. Mixed
// bidirectional text is split into direction-uniform segments before
// shaping.
package shaper

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textline"
	"github.com/gogpu/textline/cache"
	"github.com/gogpu/textline/emoji"
)

// Sentinel errors for the shaper package.
var (
	// ErrEmptyFontData is returned when LoadFont is given no data.
	ErrEmptyFontData = errors.New("shaper: empty font data")

	// ErrUnknownFont is returned for a FontID the shaper never issued.
	ErrUnknownFont = errors.New("shaper: unknown font")
)

// referencePpem is the pixel size at which per-font reference metrics are
// computed; metrics scale linearly with size from it.
const referencePpem = 100.0

// loadedFont holds both parsed forms of one font: the go-text Font used
// for shaping (read-only, safe for concurrent use) and the x/image font
// used for metrics queries (its methods take a caller-owned buffer).
type loadedFont struct {
	shape *gtfont.Font
	meta  *opentype.Font

	// maxAdvance is the widest glyph advance at referencePpem.
	maxAdvance float64
}

// Shaper shapes lines of text into textline.LineLayout values.
//
// Shaper is safe for concurrent use: loaded fonts are immutable, the
// HarfBuzz shapers are pooled (they carry internal buffers and are not
// concurrent-safe individually), and the font table is guarded by a
// read-write mutex.
type Shaper struct {
	pool  sync.Pool
	cache *cache.LayoutCache

	mu    sync.RWMutex
	fonts []*loadedFont
}

// New creates an empty Shaper. Fonts are added with LoadFont.
func New() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// NewCached creates a Shaper whose ShapeLine results are memoized in a
// sharded LRU cache with the given per-shard capacity (see the cache
// package). Layouts are immutable, so cached values are shared between
// callers.
func NewCached(capacity int) *Shaper {
	s := New()
	s.cache = cache.NewLayoutCache(capacity)
	return s
}

// CacheStats returns the layout cache counters, or zero stats for an
// uncached Shaper.
func (s *Shaper) CacheStats() cache.Stats {
	if s.cache == nil {
		return cache.Stats{}
	}
	return s.cache.Stats()
}

// LoadFont parses TTF or OTF font data and returns the FontID that
// ShapeLine and BoundingBox resolve it by. The data slice must not be
// modified afterwards.
func (s *Shaper) LoadFont(data []byte) (textline.FontID, error) {
	if len(data) == 0 {
		return 0, ErrEmptyFontData
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("shaper: parse font: %w", err)
	}

	otFont, err := opentype.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("shaper: parse font metrics: %w", err)
	}

	lf := &loadedFont{
		shape:      gtFace.Font,
		meta:       otFont,
		maxAdvance: maxGlyphAdvance(otFont),
	}

	s.mu.Lock()
	s.fonts = append(s.fonts, lf)
	id := textline.FontID(len(s.fonts) - 1)
	s.mu.Unlock()

	textline.Logger().Debug("shaper: font loaded", "font_id", id, "bytes", len(data))
	return id, nil
}

// font resolves a FontID issued by LoadFont.
func (s *Shaper) font(id textline.FontID) (*loadedFont, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(id) >= len(s.fonts) {
		return nil, ErrUnknownFont
	}
	return s.fonts[id], nil
}

// BoundingBox returns the union bounding box of the font's glyphs at the
// given size: the widest glyph advance by the line height. Renderers can
// delegate their textline.RenderContext.BoundingBox to this.
func (s *Shaper) BoundingBox(id textline.FontID, fontSize float64) (textline.Size, error) {
	lf, err := s.font(id)
	if err != nil {
		return textline.Size{}, err
	}

	var buf sfnt.Buffer
	metrics, err := lf.meta.Metrics(&buf, floatToFixed(fontSize), xfont.HintingNone)
	if err != nil {
		return textline.Size{}, fmt.Errorf("shaper: font metrics: %w", err)
	}

	return textline.Size{
		Width:  lf.maxAdvance * fontSize / referencePpem,
		Height: fixedToFloat(metrics.Ascent) + fixedToFloat(metrics.Descent),
	}, nil
}

// ShapeLine shapes one logical line of text at the given size, producing
// an immutable layout. The text must not contain newlines; wrapping of the
// shaped line into rows is a separate decision (see the wrap package).
//
// Glyphs in the returned layout carry byte indices into text that are
// monotonically non-decreasing: right-to-left segments are shaped in
// visual order and then stored reversed, so their positions are visual
// while their indices stay logical.
func (s *Shaper) ShapeLine(text string, id textline.FontID, fontSize float64) (*textline.LineLayout, error) {
	lf, err := s.font(id)
	if err != nil {
		return nil, err
	}

	var key cache.LayoutKey
	if s.cache != nil {
		key = cache.NewLayoutKey(text, id, fontSize)
		if layout, ok := s.cache.Get(key); ok {
			return layout, nil
		}
	}

	var buf sfnt.Buffer
	metrics, err := lf.meta.Metrics(&buf, floatToFixed(fontSize), xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("shaper: font metrics: %w", err)
	}

	layout := &textline.LineLayout{
		FontSize: fontSize,
		Ascent:   fixedToFloat(metrics.Ascent),
		Descent:  fixedToFloat(metrics.Descent),
		Text:     text,
	}
	if text == "" {
		if s.cache != nil {
			s.cache.Set(key, layout)
		}
		return layout, nil
	}

	runes := []rune(text)
	byteOffsets := runeByteOffsets(text, runes)
	emojiFlags := emoji.ByteFlags(text)

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	face := gtfont.NewFace(lf.shape)

	var x float64
	for _, seg := range segmentBidi(text, false) {
		dir := di.DirectionLTR
		if seg.RTL {
			dir = di.DirectionRTL
		}

		input := shaping.Input{
			Text:      runes,
			RunStart:  seg.Start,
			RunEnd:    seg.End,
			Direction: dir,
			Face:      face,
			Size:      floatToFixed(fontSize),
			Script:    segmentScript(runes[seg.Start:seg.End]),
			Language:  language.NewLanguage("en"),
		}

		output := hb.Shape(input)
		glyphs := make([]textline.ShapedGlyph, len(output.Glyphs))
		for i, g := range output.Glyphs {
			byteIndex := byteOffsets[g.ClusterIndex]
			glyphs[i] = textline.ShapedGlyph{
				ID:      textline.GlyphID(g.GlyphID),
				Index:   byteIndex,
				Position: textline.Pt(
					x+fixedToFloat(g.XOffset),
					fixedToFloat(g.YOffset),
				),
				IsEmoji: emojiFlags[byteIndex],
			}
			x += fixedToFloat(g.XAdvance)
		}

		// HarfBuzz emits RTL glyphs in visual order; store them reversed
		// so byte indices stay non-decreasing while positions stay visual.
		if seg.RTL {
			for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
				glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
			}
		}

		if len(glyphs) > 0 {
			layout.Runs = append(layout.Runs, textline.ShapedRun{FontID: id, Glyphs: glyphs})
		}
	}

	layout.Width = x
	if s.cache != nil {
		s.cache.Set(key, layout)
	}
	return layout, nil
}

// segmentScript returns the script of the first non-space rune, or Latin.
// Mixed-script segments shape with the first script found; splitting runs
// by script is the segmenter's concern, not handled here.
func segmentScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// runeByteOffsets maps each rune index to the byte offset of that rune in
// text; the final entry is len(text).
func runeByteOffsets(text string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	i := 0
	for off := range text {
		offsets[i] = off
		i++
	}
	offsets[len(runes)] = len(text)
	return offsets
}

// maxGlyphAdvance scans every glyph in the font and returns the widest
// advance at referencePpem. Done once per font load.
func maxGlyphAdvance(f *opentype.Font) float64 {
	var buf sfnt.Buffer
	ppem := floatToFixed(referencePpem)

	var maxAdv fixed.Int26_6
	for gid := 0; gid < f.NumGlyphs(); gid++ {
		adv, err := f.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), ppem, xfont.HintingNone)
		if err != nil {
			continue
		}
		if adv > maxAdv {
			maxAdv = adv
		}
	}
	return fixedToFloat(maxAdv)
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

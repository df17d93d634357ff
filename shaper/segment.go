package shaper

import "golang.org/x/text/unicode/bidi"

// segment is a contiguous run of runes sharing one bidi direction.
// Rune indices are into the full text; End is exclusive.
type segment struct {
	Start int
	End   int
	RTL   bool
}

// segmentBidi splits text into direction-uniform segments using the
// Unicode bidirectional algorithm. baseRTL selects the paragraph fallback
// direction when the text has no strong directional character.
func segmentBidi(text string, baseRTL bool) []segment {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	levels := bidiLevels(text, len(runes), baseRTL)

	segments := make([]segment, 0, 2)
	start := 0
	for i := 1; i < len(runes); i++ {
		if levels[i] == levels[start] {
			continue
		}
		segments = append(segments, segment{Start: start, End: i, RTL: levels[start]%2 == 1})
		start = i
	}
	segments = append(segments, segment{Start: start, End: len(runes), RTL: levels[start]%2 == 1})
	return segments
}

// bidiLevels returns the embedding level of each rune, reduced to even
// (LTR) or odd (RTL).
func bidiLevels(text string, runeCount int, baseRTL bool) []int {
	levels := make([]int, runeCount)

	defaultDir := bidi.Neutral
	if baseRTL {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	_, _ = p.SetString(text, bidi.DefaultDirection(defaultDir))

	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos returns inclusive rune indices.
		startRune, endRune := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := startRune; j <= endRune && j < runeCount; j++ {
			levels[j] = level
		}
	}

	return levels
}

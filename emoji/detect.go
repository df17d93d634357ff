// Package emoji classifies runes by emoji presentation.
//
// The shaper uses it to decide which glyphs take the emoji draw primitive
// (which carries its own colors) instead of the regular glyph primitive.
// Classification is a simplified form of UTS #51: default presentation
// tables plus variation selector overrides.
package emoji

// emojiRange is an inclusive range of codepoints.
type emojiRange struct {
	lo, hi rune
}

// presentationRanges covers characters with Emoji_Presentation=Yes.
// This is a simplified table of the large contiguous blocks plus common
// scattered singletons; rare singletons outside these ranges fall back to
// text presentation unless followed by U+FE0F.
var presentationRanges = []emojiRange{
	{0x231A, 0x231B},   // watch, hourglass
	{0x23E9, 0x23EC},   // fast-forward arrows
	{0x23F0, 0x23F0},   // alarm clock
	{0x23F3, 0x23F3},   // hourglass flowing
	{0x25FD, 0x25FE},   // medium-small squares
	{0x2614, 0x2615},   // umbrella with rain, hot beverage
	{0x2648, 0x2653},   // zodiac
	{0x267F, 0x267F},   // wheelchair
	{0x2693, 0x2693},   // anchor
	{0x26A1, 0x26A1},   // high voltage
	{0x26AA, 0x26AB},   // circles
	{0x26BD, 0x26BE},   // soccer, baseball
	{0x26C4, 0x26C5},   // snowman, sun behind cloud
	{0x26CE, 0x26CE},   // ophiuchus
	{0x26D4, 0x26D4},   // no entry
	{0x26EA, 0x26EA},   // church
	{0x26F2, 0x26F3},   // fountain, golf
	{0x26F5, 0x26F5},   // sailboat
	{0x26FA, 0x26FA},   // tent
	{0x26FD, 0x26FD},   // fuel pump
	{0x2705, 0x2705},   // check mark button
	{0x270A, 0x270B},   // fists
	{0x2728, 0x2728},   // sparkles
	{0x274C, 0x274C},   // cross mark
	{0x274E, 0x274E},   // cross mark button
	{0x2753, 0x2755},   // question/exclamation marks
	{0x2757, 0x2757},   // exclamation mark
	{0x2795, 0x2797},   // plus, minus, divide
	{0x27B0, 0x27B0},   // curly loop
	{0x27BF, 0x27BF},   // double curly loop
	{0x2B1B, 0x2B1C},   // large squares
	{0x2B50, 0x2B50},   // star
	{0x2B55, 0x2B55},   // hollow red circle
	{0x1F004, 0x1F004}, // mahjong red dragon
	{0x1F0CF, 0x1F0CF}, // joker
	{0x1F18E, 0x1F18E}, // AB button
	{0x1F191, 0x1F19A}, // squared CL..VS
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x1F201, 0x1F201}, // squared katakana koko
	{0x1F21A, 0x1F21A}, // squared CJK "free of charge"
	{0x1F22F, 0x1F22F}, // squared CJK "reserved"
	{0x1F232, 0x1F236}, // squared CJK ideographs
	{0x1F238, 0x1F23A}, // squared CJK ideographs
	{0x1F250, 0x1F251}, // circled ideographs
	{0x1F300, 0x1F320}, // weather, landscape
	{0x1F32D, 0x1F335}, // food, plants
	{0x1F337, 0x1F37C}, // plants, food
	{0x1F37E, 0x1F393}, // celebration
	{0x1F3A0, 0x1F3CA}, // activities
	{0x1F3CF, 0x1F3D3}, // sports
	{0x1F3E0, 0x1F3F0}, // buildings
	{0x1F3F4, 0x1F3F4}, // black flag
	{0x1F3F8, 0x1F43E}, // animals
	{0x1F440, 0x1F440}, // eyes
	{0x1F442, 0x1F4FC}, // people, objects
	{0x1F4FF, 0x1F53D}, // objects, symbols
	{0x1F54B, 0x1F54E}, // religious symbols
	{0x1F550, 0x1F567}, // clock faces
	{0x1F57A, 0x1F57A}, // man dancing
	{0x1F595, 0x1F596}, // hand gestures
	{0x1F5A4, 0x1F5A4}, // black heart
	{0x1F5FB, 0x1F64F}, // places, smileys, gestures
	{0x1F680, 0x1F6C5}, // transport
	{0x1F6CC, 0x1F6CC}, // person in bed
	{0x1F6D0, 0x1F6D2}, // symbols, cart
	{0x1F6D5, 0x1F6D7}, // places
	{0x1F6EB, 0x1F6EC}, // airplanes
	{0x1F6F4, 0x1F6FC}, // scooters, boats
	{0x1F7E0, 0x1F7EB}, // colored shapes
	{0x1F90C, 0x1F93A}, // gestures, people
	{0x1F93C, 0x1F945}, // sports
	{0x1F947, 0x1F9FF}, // medals, smileys, objects
	{0x1FA70, 0x1FAFF}, // extended symbols
}

// IsPresentation returns true if the rune defaults to emoji presentation.
// These characters display as emoji without requiring U+FE0F.
func IsPresentation(r rune) bool {
	for _, rg := range presentationRanges {
		if r < rg.lo {
			return false
		}
		if r <= rg.hi {
			return true
		}
	}
	return false
}

// IsEmoji returns true if the rune is an emoji character: default emoji
// presentation, or a component of emoji sequences (modifiers, ZWJ,
// variation selectors, tags).
func IsEmoji(r rune) bool {
	return IsPresentation(r) || IsComponent(r)
}

// IsComponent returns true for characters that only appear inside emoji
// sequences.
func IsComponent(r rune) bool {
	return IsModifier(r) || IsZWJ(r) || r == 0xFE0F || r == 0x20E3 || IsTag(r)
}

// IsModifier returns true if the rune is a skin tone modifier
// (Fitzpatrick scale, U+1F3FB..U+1F3FF).
func IsModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsZWJ returns true if the rune is Zero-Width Joiner (U+200D), which
// joins emoji into composite sequences.
func IsZWJ(r rune) bool {
	return r == 0x200D
}

// IsRegionalIndicator returns true for Regional Indicator symbols; two of
// them form a flag emoji.
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsTag returns true for emoji tag characters (U+E0020..U+E007F), used in
// subdivision flag sequences.
func IsTag(r rune) bool {
	return r >= 0xE0020 && r <= 0xE007F
}

// IsTextSelector returns true for the text variation selector (U+FE0E).
func IsTextSelector(r rune) bool {
	return r == 0xFE0E
}

// IsEmojiSelector returns true for the emoji variation selector (U+FE0F).
func IsEmojiSelector(r rune) bool {
	return r == 0xFE0F
}

// Presents reports whether runes[i] renders with emoji presentation,
// taking a following variation selector into account: U+FE0E forces text,
// U+FE0F forces emoji, otherwise the default presentation applies.
func Presents(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return false
	}
	if i+1 < len(runes) {
		switch {
		case IsTextSelector(runes[i+1]):
			return false
		case IsEmojiSelector(runes[i+1]):
			return true
		}
	}
	r := runes[i]
	return IsPresentation(r) || IsModifier(r)
}

// ByteFlags maps the byte offset of each rune in text to its emoji
// presentation. Only rune start offsets appear as keys; the map is nil for
// text containing no emoji.
func ByteFlags(text string) map[int]bool {
	runes := []rune(text)
	var flags map[int]bool

	i := 0
	for off := range text {
		if Presents(runes, i) {
			if flags == nil {
				flags = make(map[int]bool)
			}
			flags[off] = true
		}
		i++
	}
	return flags
}

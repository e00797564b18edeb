package layout

import "unicode"

// bulletMarkers are single-rune bullet glyphs commonly emitted by PDF
// producers
var bulletMarkers = map[rune]bool{
	'-': true,
	'*': true,
	'•': true,
	'◦': true,
	'▪': true,
	'‣': true,
	'–': true,
}

// IsListPrefix reports whether a word marks the start of a list item: a
// bullet glyph, or a run of digits terminated by "." or ")".
func IsListPrefix(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}

	if len(runes) == 1 {
		return bulletMarkers[runes[0]]
	}

	// Numbered markers like "1." or "12)"
	last := runes[len(runes)-1]
	if last != '.' && last != ')' {
		return false
	}
	for _, r := range runes[:len(runes)-1] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

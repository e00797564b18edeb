package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const softHyphen = '­'

// NormalizeText cleans a text-layer string for downstream segmentation.
//
// It applies Unicode NFC normalization, then:
//   - a soft hyphen at the end of the text (or before whitespace) becomes a
//     regular hyphen, so split words can be rejoined later
//   - a soft hyphen mid-word is dropped (it is an invisible break hint)
//   - control characters other than tab, newline, and carriage return are
//     removed
func NormalizeText(s string) string {
	s = norm.NFC.String(s)

	if !needsCleanup(s) {
		return s
	}

	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s))

	for i, r := range runes {
		switch {
		case r == softHyphen:
			atEnd := i == len(runes)-1 || unicode.IsSpace(runes[i+1])
			if atEnd {
				sb.WriteByte('-')
			}
		case unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r':
			// drop
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// needsCleanup reports whether the string contains a soft hyphen or a
// stripped control character.
func needsCleanup(s string) bool {
	for _, r := range s {
		if r == softHyphen {
			return true
		}
		if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

// NormalizeChars returns a copy of chars with every character's text
// normalized via [NormalizeText]. Characters whose text becomes empty after
// normalization are dropped.
func NormalizeChars(chars []Char) []Char {
	out := make([]Char, 0, len(chars))
	for _, c := range chars {
		cleaned := NormalizeText(c.Text)
		if cleaned == "" && c.Text != "" && strings.TrimSpace(c.Text) != "" {
			// Text was pure control characters; drop the glyph entirely.
			continue
		}
		c.Text = cleaned
		out = append(out, c)
	}
	return out
}

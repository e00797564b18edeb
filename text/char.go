package text

import "strings"

// Char represents a single laid-out glyph as supplied by the PDF text layer.
// Coordinates follow the PDF convention: BaselineY increases upward, so a
// larger BaselineY means higher on the page.
type Char struct {
	// Text is the glyph's text content (usually one rune, may be a ligature)
	Text string

	// X is the left edge of the glyph
	X float64

	// BaselineY is the Y coordinate of the text baseline
	BaselineY float64

	// Width is the advance width of the glyph
	Width float64

	// Height is the glyph height
	Height float64

	// FontSize is the effective font size in points
	FontSize float64

	// Bold indicates a bold font face
	Bold bool

	// Italic indicates an italic or oblique font face
	Italic bool
}

// IsWhitespace returns true if the character is empty or whitespace-only.
func (c Char) IsWhitespace() bool {
	return strings.TrimSpace(c.Text) == ""
}

// CenterX returns the horizontal center of the glyph.
func (c Char) CenterX() float64 {
	return c.X + c.Width/2
}

// Page holds the text-layer data for a single page: its dimensions in points
// and an unordered sequence of character records.
type Page struct {
	// Width is the page width in points
	Width float64

	// Height is the page height in points
	Height float64

	// Chars are the character records, in no particular order
	Chars []Char
}

// Word represents a maximal run of characters with no qualifying gap.
type Word struct {
	// Text is the assembled word text
	Text string

	// XStart is the left edge of the word
	XStart float64

	// XEnd is the right edge of the word
	XEnd float64

	// BaselineY is the average baseline of the word's characters
	BaselineY float64

	// FontSize is the average font size of the word's characters
	FontSize float64

	// Bold is true when the majority of characters are bold
	Bold bool

	// Italic is true when the majority of characters are italic
	Italic bool
}

package layout

import (
	"sort"
	"strings"
)

// Paragraph represents lines grouped by vertical continuity, with optional
// heading classification.
type Paragraph struct {
	// Lines are the paragraph's lines, ordered top to bottom
	Lines []Line

	// DominantFontSize is the font size occurring in the most lines, rounded
	// to the nearest 0.5pt
	DominantFontSize float64

	// HeadingLevel is the assigned heading level; 0 means body text. Only the
	// classifier and the structure-tree bridge set this.
	HeadingLevel int

	// IsListItem is true when the paragraph looks like a bullet or numbered
	// list item
	IsListItem bool

	// Bold is true when at least half of the lines are bold
	Bold bool

	// Italic is true when at least half of the lines are italic
	Italic bool
}

// Text returns the paragraph's lines joined with single spaces.
func (p *Paragraph) Text() string {
	if p == nil || len(p.Lines) == 0 {
		return ""
	}
	parts := make([]string, len(p.Lines))
	for i := range p.Lines {
		parts[i] = p.Lines[i].Text()
	}
	return strings.Join(parts, " ")
}

// WordCount returns the total number of words across all lines.
func (p *Paragraph) WordCount() int {
	if p == nil {
		return 0
	}
	n := 0
	for i := range p.Lines {
		n += len(p.Lines[i].Words)
	}
	return n
}

// ParagraphConfig holds configuration for paragraph grouping
type ParagraphConfig struct {
	// GapMultiplier scales the tight single-line spacing into the primary
	// paragraph break threshold (default: 1.5)
	GapMultiplier float64

	// SuperscriptGapFraction filters baseline gaps smaller than this fraction
	// of the average font size out of the spacing estimate; such gaps are
	// superscript or subscript artifacts (default: 0.4)
	SuperscriptGapFraction float64

	// SecondaryGapFraction is the fraction of the tight spacing a gap must
	// exceed before a font-size or indent change can break a paragraph
	// (default: 0.8)
	SecondaryGapFraction float64

	// FontSizeChangeThreshold is the dominant font size change in points that
	// signals a paragraph break (default: 1.5)
	FontSizeChangeThreshold float64

	// IndentChangeThreshold is the left indent change in points that signals
	// a paragraph break (default: 10.0)
	IndentChangeThreshold float64

	// MaxListItemLines is the maximum number of lines for a paragraph to be
	// flagged as a list item (default: 5)
	MaxListItemLines int
}

// DefaultParagraphConfig returns sensible default configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		GapMultiplier:           1.5,
		SuperscriptGapFraction:  0.4,
		SecondaryGapFraction:    0.8,
		FontSizeChangeThreshold: 1.5,
		IndentChangeThreshold:   10.0,
		MaxListItemLines:        5,
	}
}

// ParagraphGrouper merges lines into paragraphs using spacing, font, and
// indent signals
type ParagraphGrouper struct {
	config ParagraphConfig
}

// NewParagraphGrouper creates a new paragraph grouper with default configuration
func NewParagraphGrouper() *ParagraphGrouper {
	return &ParagraphGrouper{
		config: DefaultParagraphConfig(),
	}
}

// NewParagraphGrouperWithConfig creates a paragraph grouper with custom configuration
func NewParagraphGrouperWithConfig(config ParagraphConfig) *ParagraphGrouper {
	return &ParagraphGrouper{
		config: config,
	}
}

// Group merges lines into paragraphs.
//
// The tight single-line spacing is the minimum of consecutive baseline gaps
// after discarding gaps below SuperscriptGapFraction of the average font
// size. A paragraph breaks when the gap to the previous line exceeds the
// tight spacing times GapMultiplier, or when the gap exceeds
// SecondaryGapFraction of the tight spacing and the dominant font size or
// left indent changes beyond its threshold. Requiring a partial gap for the
// secondary signals avoids over-splitting tightly spaced mixed-size content
// such as slide decks.
func (g *ParagraphGrouper) Group(lines []Line) []Paragraph {
	if len(lines) == 0 {
		return nil
	}
	if len(lines) == 1 {
		return []Paragraph{g.finalizeParagraph(lines)}
	}

	baseSpacing := g.tightSpacing(lines)
	breakThreshold := baseSpacing * g.config.GapMultiplier
	someGapThreshold := baseSpacing * g.config.SecondaryGapFraction

	var paragraphs []Paragraph
	current := []Line{lines[0]}

	for _, line := range lines[1:] {
		prev := current[len(current)-1]

		gap := absFloat(line.BaselineY - prev.BaselineY)
		fontChange := absFloat(line.DominantFontSize - prev.DominantFontSize)
		indentChange := absFloat(line.Indent() - prev.Indent())

		significantGap := gap > breakThreshold
		someGap := gap > someGapThreshold
		fontBreak := fontChange > g.config.FontSizeChangeThreshold
		indentBreak := indentChange > g.config.IndentChangeThreshold

		if significantGap || (someGap && (fontBreak || indentBreak)) {
			paragraphs = append(paragraphs, g.finalizeParagraph(current))
			current = []Line{line}
		} else {
			current = append(current, line)
		}
	}

	if len(current) > 0 {
		paragraphs = append(paragraphs, g.finalizeParagraph(current))
	}

	return paragraphs
}

// tightSpacing estimates the single-line spacing from consecutive baseline
// gaps, filtering out superscript artifacts and taking the minimum of what
// remains. Falls back to the average font size when every gap is filtered.
func (g *ParagraphGrouper) tightSpacing(lines []Line) float64 {
	avgFontSize := 0.0
	for _, l := range lines {
		avgFontSize += l.DominantFontSize
	}
	avgFontSize /= float64(len(lines))

	var gaps []float64
	for i := 1; i < len(lines); i++ {
		gap := absFloat(lines[i].BaselineY - lines[i-1].BaselineY)
		if gap > avgFontSize*g.config.SuperscriptGapFraction {
			gaps = append(gaps, gap)
		}
	}

	if len(gaps) == 0 {
		return avgFontSize
	}

	sort.Float64s(gaps)
	return gaps[0]
}

// finalizeParagraph builds a Paragraph from a group of lines
func (g *ParagraphGrouper) finalizeParagraph(lines []Line) Paragraph {
	sizes := make([]float64, len(lines))
	boldCount := 0
	italicCount := 0
	for i, l := range lines {
		sizes[i] = l.DominantFontSize
		if l.Bold {
			boldCount++
		}
		if l.Italic {
			italicCount++
		}
	}

	majority := (len(lines) + 1) / 2

	isListItem := false
	if len(lines) <= g.config.MaxListItemLines && len(lines) > 0 && len(lines[0].Words) > 0 {
		isListItem = IsListPrefix(lines[0].Words[0].Text)
	}

	return Paragraph{
		Lines:            lines,
		DominantFontSize: DominantFontSize(sizes),
		Bold:             boldCount >= majority,
		Italic:           italicCount >= majority,
		IsListItem:       isListItem,
	}
}

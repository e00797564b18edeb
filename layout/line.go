package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/pagemark/text"
)

// Line represents a single line of text: words sharing a common baseline.
type Line struct {
	// Words are the words in this line (sorted left to right)
	Words []text.Word

	// BaselineY is the average baseline of the line's words
	BaselineY float64

	// DominantFontSize is the most frequent word font size, rounded to the
	// nearest 0.5pt
	DominantFontSize float64

	// Bold is true when at least half of the words are bold
	Bold bool

	// Italic is true when at least half of the words are italic
	Italic bool
}

// Text returns the line's words joined with single spaces.
func (l *Line) Text() string {
	if l == nil || len(l.Words) == 0 {
		return ""
	}
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// Indent returns the left edge of the line (XStart of the first word).
func (l *Line) Indent() float64 {
	if l == nil || len(l.Words) == 0 {
		return 0
	}
	return l.Words[0].XStart
}

// LineConfig holds configuration for line grouping
type LineConfig struct {
	// BaselineToleranceFraction is the baseline difference tolerated within a
	// line, as a fraction of the smallest font size involved (default: 0.5)
	BaselineToleranceFraction float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		BaselineToleranceFraction: 0.5,
	}
}

// LineGrouper groups words into lines by baseline proximity
type LineGrouper struct {
	config LineConfig
}

// NewLineGrouper creates a new line grouper with default configuration
func NewLineGrouper() *LineGrouper {
	return &LineGrouper{
		config: DefaultLineConfig(),
	}
}

// NewLineGrouperWithConfig creates a line grouper with custom configuration
func NewLineGrouperWithConfig(config LineConfig) *LineGrouper {
	return &LineGrouper{
		config: config,
	}
}

// Group organizes words into lines.
//
// Words are sorted by baseline descending (top of page first) then XStart
// ascending. A word joins the current line while its baseline stays within
// tolerance of the line's running average baseline; otherwise it starts a new
// line. Finished lines are re-sorted left to right.
func (g *LineGrouper) Group(words []text.Word) []Line {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]text.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BaselineY != sorted[j].BaselineY {
			return sorted[i].BaselineY > sorted[j].BaselineY
		}
		return sorted[i].XStart < sorted[j].XStart
	})

	var lines []Line
	current := []text.Word{sorted[0]}

	for _, word := range sorted[1:] {
		avgBaseline := 0.0
		minSize := word.FontSize
		for _, w := range current {
			avgBaseline += w.BaselineY
			if w.FontSize < minSize {
				minSize = w.FontSize
			}
		}
		avgBaseline /= float64(len(current))
		if minSize < 1.0 {
			minSize = 1.0
		}

		if absFloat(word.BaselineY-avgBaseline) < g.config.BaselineToleranceFraction*minSize {
			current = append(current, word)
		} else {
			lines = append(lines, finalizeLine(current))
			current = []text.Word{word}
		}
	}

	if len(current) > 0 {
		lines = append(lines, finalizeLine(current))
	}

	return lines
}

// finalizeLine builds a Line from a set of words, sorting them left to right
func finalizeLine(words []text.Word) Line {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].XStart < words[j].XStart
	})

	baselineSum := 0.0
	sizes := make([]float64, len(words))
	boldCount := 0
	italicCount := 0

	for i, w := range words {
		baselineSum += w.BaselineY
		sizes[i] = w.FontSize
		if w.Bold {
			boldCount++
		}
		if w.Italic {
			italicCount++
		}
	}

	majority := (len(words) + 1) / 2

	return Line{
		Words:            words,
		BaselineY:        baselineSum / float64(len(words)),
		DominantFontSize: DominantFontSize(sizes),
		Bold:             boldCount >= majority,
		Italic:           italicCount >= majority,
	}
}

// DominantFontSize returns the most frequent font size in sizes, rounded to
// the nearest 0.5pt. Ties resolve to the size seen first after rounding.
// Returns 0 for empty input.
func DominantFontSize(sizes []float64) float64 {
	if len(sizes) == 0 {
		return 0
	}

	type bucket struct {
		key   int
		count int
	}
	var buckets []bucket

	for _, s := range sizes {
		key := int(roundHalf(s) * 2)
		found := false
		for i := range buckets {
			if buckets[i].key == key {
				buckets[i].count++
				found = true
				break
			}
		}
		if !found {
			buckets = append(buckets, bucket{key: key, count: 1})
		}
	}

	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.count > best.count {
			best = b
		}
	}

	return float64(best.key) / 2
}

// roundHalf rounds v to the nearest 0.5
func roundHalf(v float64) float64 {
	scaled := v * 2
	floor := float64(int(scaled))
	if scaled-floor >= 0.5 {
		floor++
	}
	return floor / 2
}

// absFloat returns the absolute value of a float64
func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

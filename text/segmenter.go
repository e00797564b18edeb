package text

import "sort"

// SegmenterConfig holds configuration for word segmentation
type SegmenterConfig struct {
	// WordGapFraction is the horizontal gap that closes a word, as a fraction
	// of the average font size of the adjacent characters (default: 0.3)
	WordGapFraction float64

	// BaselineToleranceFraction is the baseline difference that closes a word,
	// as a fraction of the smaller font size of the adjacent characters
	// (default: 0.5)
	BaselineToleranceFraction float64
}

// DefaultSegmenterConfig returns sensible default configuration
func DefaultSegmenterConfig() SegmenterConfig {
	return SegmenterConfig{
		WordGapFraction:           0.3,
		BaselineToleranceFraction: 0.5,
	}
}

// Segmenter groups character records into words via gap detection
type Segmenter struct {
	config SegmenterConfig
}

// NewSegmenter creates a new segmenter with default configuration
func NewSegmenter() *Segmenter {
	return &Segmenter{
		config: DefaultSegmenterConfig(),
	}
}

// NewSegmenterWithConfig creates a segmenter with custom configuration
func NewSegmenterWithConfig(config SegmenterConfig) *Segmenter {
	return &Segmenter{
		config: config,
	}
}

// Words converts raw characters into words.
//
// Characters are sorted by baseline descending (top of page first) then X
// ascending. A space character closes the current word. A non-space character
// closes the word when the horizontal gap to the previous character exceeds
// WordGapFraction times the average font size, or when its baseline differs
// from the previous character's by more than BaselineToleranceFraction times
// the smaller font size. Empty input yields zero words.
func (s *Segmenter) Words(chars []Char) []Word {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BaselineY != sorted[j].BaselineY {
			return sorted[i].BaselineY > sorted[j].BaselineY
		}
		return sorted[i].X < sorted[j].X
	})

	var words []Word
	var run []Char

	for _, ch := range sorted {
		// Space characters act as explicit word breaks.
		if ch.IsWhitespace() {
			if len(run) > 0 {
				words = append(words, finalizeWord(run))
				run = run[:0]
			}
			continue
		}

		if len(run) == 0 {
			run = append(run, ch)
			continue
		}

		prev := run[len(run)-1]

		minSize := minFloat(prev.FontSize, ch.FontSize)
		if minSize < 1.0 {
			minSize = 1.0
		}
		sameLine := absFloat(prev.BaselineY-ch.BaselineY) < s.config.BaselineToleranceFraction*minSize

		if sameLine {
			gap := ch.X - (prev.X + prev.Width)
			avgSize := (prev.FontSize + ch.FontSize) / 2
			if avgSize < 1.0 {
				avgSize = 1.0
			}
			if gap > s.config.WordGapFraction*avgSize {
				words = append(words, finalizeWord(run))
				run = run[:0]
			}
		} else {
			words = append(words, finalizeWord(run))
			run = run[:0]
		}

		run = append(run, ch)
	}

	if len(run) > 0 {
		words = append(words, finalizeWord(run))
	}

	return words
}

// finalizeWord builds a Word from a run of characters
func finalizeWord(chars []Char) Word {
	var sb []byte
	xStart := chars[0].X
	xEnd := chars[0].X + chars[0].Width
	baselineSum := 0.0
	sizeSum := 0.0
	boldCount := 0
	italicCount := 0

	for _, c := range chars {
		sb = append(sb, c.Text...)
		if c.X < xStart {
			xStart = c.X
		}
		if c.X+c.Width > xEnd {
			xEnd = c.X + c.Width
		}
		baselineSum += c.BaselineY
		sizeSum += c.FontSize
		if c.Bold {
			boldCount++
		}
		if c.Italic {
			italicCount++
		}
	}

	n := len(chars)
	majority := n / 2

	return Word{
		Text:      string(sb),
		XStart:    xStart,
		XEnd:      xEnd,
		BaselineY: baselineSum / float64(n),
		FontSize:  sizeSum / float64(n),
		Bold:      boldCount > majority,
		Italic:    italicCount > majority,
	}
}

// absFloat returns the absolute value of a float64
func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// minFloat returns the smaller of two float64 values
func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

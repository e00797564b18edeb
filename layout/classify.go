package layout

// ClassifierConfig holds configuration for heading classification
type ClassifierConfig struct {
	// MaxHeadingWords is the word count ceiling above which a paragraph is
	// never classified as a heading (default: 12)
	MaxHeadingWords int
}

// DefaultClassifierConfig returns sensible default configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MaxHeadingWords: 12,
	}
}

// Classifier assigns heading levels to paragraphs using a heading map built
// from the document's font size distribution
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a new classifier with default configuration
func NewClassifier() *Classifier {
	return &Classifier{
		config: DefaultClassifierConfig(),
	}
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{
		config: config,
	}
}

// Classify sets HeadingLevel on each paragraph from the heading map. A
// paragraph keeps level 0 (body) when the map is empty, when its dominant
// font size maps to body, or when it has more than MaxHeadingWords words.
// The slice is modified in place and returned for convenience.
func (c *Classifier) Classify(paragraphs []Paragraph, headings HeadingMap) []Paragraph {
	if headings.IsEmpty() {
		return paragraphs
	}

	for i := range paragraphs {
		p := &paragraphs[i]
		level := headings.LevelFor(p.DominantFontSize)
		if level == 0 {
			continue
		}
		if p.WordCount() > c.config.MaxHeadingWords {
			continue
		}
		p.HeadingLevel = level
	}

	return paragraphs
}

package layout

import (
	"strings"
	"testing"
)

// makeParagraph builds a one-line paragraph with the given words and font size
func makeParagraph(words string, fontSize float64) Paragraph {
	var line Line
	x := 0.0
	for _, w := range strings.Fields(words) {
		line.Words = append(line.Words, makeWord(w, x, 700, fontSize))
		x += 60
	}
	line.BaselineY = 700
	line.DominantFontSize = fontSize
	return Paragraph{
		Lines:            []Line{line},
		DominantFontSize: fontSize,
	}
}

func testHeadingMap() HeadingMap {
	return AssignHeadingLevels([]FontSizeCluster{
		{Centroid: 24, Members: 2},
		{Centroid: 18, Members: 4},
		{Centroid: 12, Members: 40},
	}, DefaultHeadingConfig())
}

func TestClassifierAssignsLevels(t *testing.T) {
	paragraphs := []Paragraph{
		makeParagraph("Document Title", 24),
		makeParagraph("Section Heading", 18),
		makeParagraph("Plain body text here", 12),
	}

	c := NewClassifier()
	got := c.Classify(paragraphs, testHeadingMap())

	if got[0].HeadingLevel != 1 {
		t.Errorf("expected H1 for 24pt, got %d", got[0].HeadingLevel)
	}
	if got[1].HeadingLevel != 2 {
		t.Errorf("expected H2 for 18pt, got %d", got[1].HeadingLevel)
	}
	if got[2].HeadingLevel != 0 {
		t.Errorf("expected body for 12pt, got %d", got[2].HeadingLevel)
	}
}

func TestClassifierWordCountCeiling(t *testing.T) {
	long := makeParagraph(strings.Repeat("word ", 13), 24)

	c := NewClassifier()
	got := c.Classify([]Paragraph{long}, testHeadingMap())

	if got[0].HeadingLevel != 0 {
		t.Errorf("expected long paragraph to stay body, got %d", got[0].HeadingLevel)
	}
}

func TestClassifierEmptyHeadingMap(t *testing.T) {
	paragraphs := []Paragraph{makeParagraph("Big text", 24)}

	c := NewClassifier()
	got := c.Classify(paragraphs, HeadingMap{})

	if got[0].HeadingLevel != 0 {
		t.Errorf("expected body with empty heading map, got %d", got[0].HeadingLevel)
	}
}

func TestClassifierCustomCeiling(t *testing.T) {
	paragraphs := []Paragraph{makeParagraph("One Two Three", 24)}

	c := NewClassifierWithConfig(ClassifierConfig{MaxHeadingWords: 2})
	got := c.Classify(paragraphs, testHeadingMap())

	if got[0].HeadingLevel != 0 {
		t.Errorf("expected three-word heading rejected at ceiling 2, got %d", got[0].HeadingLevel)
	}
}

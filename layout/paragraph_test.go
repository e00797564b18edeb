package layout

import (
	"testing"

	"github.com/tsawler/pagemark/text"
)

// makeLine builds a single-word line fixture at the given position
func makeLine(s string, indent, baseline, fontSize float64) Line {
	return Line{
		Words:            []text.Word{makeWord(s, indent, baseline, fontSize)},
		BaselineY:        baseline,
		DominantFontSize: fontSize,
	}
}

func TestParagraphGrouperEmpty(t *testing.T) {
	g := NewParagraphGrouper()
	if got := g.Group(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestParagraphGrouperSingleLine(t *testing.T) {
	lines := []Line{makeLine("Alone", 0, 700, 12)}

	g := NewParagraphGrouper()
	paragraphs := g.Group(lines)

	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0].Text() != "Alone" {
		t.Errorf("expected %q, got %q", "Alone", paragraphs[0].Text())
	}
}

func TestParagraphGrouperLargeGapBreaks(t *testing.T) {
	// Three tightly spaced lines, then a 50pt gap to a fourth.
	lines := []Line{
		makeLine("one", 0, 700, 14),
		makeLine("two", 0, 686, 14),
		makeLine("three", 0, 672, 14),
		makeLine("four", 0, 622, 14),
	}

	g := NewParagraphGrouper()
	paragraphs := g.Group(lines)

	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paragraphs))
	}
	if paragraphs[0].Text() != "one two three" {
		t.Errorf("expected first paragraph %q, got %q", "one two three", paragraphs[0].Text())
	}
	if paragraphs[1].Text() != "four" {
		t.Errorf("expected second paragraph %q, got %q", "four", paragraphs[1].Text())
	}
}

func TestParagraphGrouperUniformSpacingStaysTogether(t *testing.T) {
	lines := []Line{
		makeLine("one", 0, 700, 12),
		makeLine("two", 0, 686, 12),
		makeLine("three", 0, 672, 12),
		makeLine("four", 0, 658, 12),
	}

	g := NewParagraphGrouper()
	paragraphs := g.Group(lines)

	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
}

func TestParagraphGrouperFontChangeWithGapBreaks(t *testing.T) {
	// The gap from the heading to the body (16pt) is above 80% of the 14pt
	// base spacing but below 1.5x, so the 6pt font size change is what splits.
	lines := []Line{
		makeLine("Title", 0, 700, 18),
		makeLine("body", 0, 684, 12),
		makeLine("more", 0, 670, 12),
	}

	g := NewParagraphGrouper()
	paragraphs := g.Group(lines)

	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paragraphs))
	}
	if paragraphs[0].Text() != "Title" {
		t.Errorf("expected heading paragraph first, got %q", paragraphs[0].Text())
	}
}

func TestParagraphGrouperFontChangeWithoutGapStaysTogether(t *testing.T) {
	// Mixed sizes on very tight spacing should not split; the secondary
	// signals require a partial gap first.
	lines := []Line{
		makeLine("big", 0, 700, 18),
		makeLine("small", 0, 696, 12),
		makeLine("big", 0, 692, 18),
		makeLine("small", 0, 688, 12),
	}

	g := NewParagraphGrouper()
	paragraphs := g.Group(lines)

	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d: %v", len(paragraphs), paragraphs)
	}
}

func TestParagraphGrouperIndentChangeWithGapBreaks(t *testing.T) {
	lines := []Line{
		makeLine("flush", 0, 700, 12),
		makeLine("flush", 0, 686, 12),
		makeLine("indented", 36, 670, 12),
	}

	g := NewParagraphGrouper()
	paragraphs := g.Group(lines)

	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paragraphs))
	}
}

func TestParagraphListDetection(t *testing.T) {
	lines := []Line{
		{
			Words: []text.Word{
				makeWord("-", 0, 700, 12),
				makeWord("item", 10, 700, 12),
			},
			BaselineY:        700,
			DominantFontSize: 12,
		},
	}

	g := NewParagraphGrouper()
	paragraphs := g.Group(lines)

	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if !paragraphs[0].IsListItem {
		t.Error("expected paragraph to be flagged as list item")
	}
}

func TestParagraphLongBlockIsNotListItem(t *testing.T) {
	var lines []Line
	baseline := 700.0
	for i := 0; i < 6; i++ {
		prefix := "text"
		if i == 0 {
			prefix = "-"
		}
		lines = append(lines, makeLine(prefix, 0, baseline, 12))
		baseline -= 14
	}

	g := NewParagraphGrouper()
	paragraphs := g.Group(lines)

	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if paragraphs[0].IsListItem {
		t.Error("expected 6-line block not to be flagged as list item")
	}
}

func TestParagraphStyleMajority(t *testing.T) {
	lines := []Line{
		{Words: []text.Word{makeWord("a", 0, 700, 12)}, BaselineY: 700, DominantFontSize: 12, Bold: true},
		{Words: []text.Word{makeWord("b", 0, 686, 12)}, BaselineY: 686, DominantFontSize: 12, Bold: true},
		{Words: []text.Word{makeWord("c", 0, 672, 12)}, BaselineY: 672, DominantFontSize: 12},
	}

	g := NewParagraphGrouper()
	paragraphs := g.Group(lines)

	if len(paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paragraphs))
	}
	if !paragraphs[0].Bold {
		t.Error("expected bold majority to mark paragraph bold")
	}
	if paragraphs[0].Italic {
		t.Error("expected paragraph not italic")
	}
}

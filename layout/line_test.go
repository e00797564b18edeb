package layout

import (
	"testing"

	"github.com/tsawler/pagemark/text"
)

func makeWord(s string, x, baseline, fontSize float64) text.Word {
	return text.Word{
		Text:      s,
		XStart:    x,
		XEnd:      x + float64(len(s))*fontSize*0.6,
		BaselineY: baseline,
		FontSize:  fontSize,
	}
}

func TestLineGrouperEmpty(t *testing.T) {
	g := NewLineGrouper()
	if lines := g.Group(nil); lines != nil {
		t.Errorf("expected nil for empty input, got %v", lines)
	}
}

func TestLineGrouperSameBaseline(t *testing.T) {
	words := []text.Word{
		makeWord("Hello", 0, 700, 12),
		makeWord("world", 50, 700.5, 12),
	}

	g := NewLineGrouper()
	lines := g.Group(words)

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text() != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", lines[0].Text())
	}
}

func TestLineGrouperSplitsBaselines(t *testing.T) {
	words := []text.Word{
		makeWord("First", 0, 700, 12),
		makeWord("Second", 0, 680, 12),
	}

	g := NewLineGrouper()
	lines := g.Group(words)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Top line (larger baseline in PDF coordinates) first.
	if lines[0].Text() != "First" {
		t.Errorf("expected top line %q, got %q", "First", lines[0].Text())
	}
	if lines[1].Text() != "Second" {
		t.Errorf("expected bottom line %q, got %q", "Second", lines[1].Text())
	}
}

func TestLineGrouperSortsWordsLeftToRight(t *testing.T) {
	words := []text.Word{
		makeWord("world", 60, 700, 12),
		makeWord("Hello", 0, 700, 12),
	}

	g := NewLineGrouper()
	lines := g.Group(words)

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text() != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", lines[0].Text())
	}
}

func TestLineIndent(t *testing.T) {
	words := []text.Word{
		makeWord("Indented", 36, 700, 12),
	}

	g := NewLineGrouper()
	lines := g.Group(words)

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Indent() != 36 {
		t.Errorf("expected indent 36, got %f", lines[0].Indent())
	}
}

func TestDominantFontSize(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []float64{12}, 12},
		{"most frequent wins", []float64{12, 12, 24}, 12},
		{"rounds to half point", []float64{11.9, 12.1, 12.2}, 12},
		{"first seen breaks ties", []float64{14, 12}, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantFontSize(tt.sizes); got != tt.want {
				t.Errorf("DominantFontSize(%v) = %f, want %f", tt.sizes, got, tt.want)
			}
		})
	}
}

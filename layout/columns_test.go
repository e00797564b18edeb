package layout

import (
	"testing"

	"github.com/tsawler/pagemark/text"
)

func makeChar(s string, x, baseline float64) text.Char {
	return text.Char{
		Text:      s,
		X:         x,
		BaselineY: baseline,
		Width:     6,
		Height:    12,
		FontSize:  12,
	}
}

// fillRegion scatters characters across a horizontal band on several
// baselines so the band registers as occupied over most of the page height.
func fillRegion(xMin, xMax float64) []text.Char {
	var chars []text.Char
	for baseline := 50.0; baseline <= 750; baseline += 50 {
		for x := xMin; x < xMax; x += 10 {
			chars = append(chars, makeChar("a", x, baseline))
		}
	}
	return chars
}

func TestColumnDetectorEmpty(t *testing.T) {
	d := NewColumnDetector()
	regions := d.Detect(nil, 612, 792)

	if len(regions) != 1 {
		t.Fatalf("expected 1 full-width region, got %d", len(regions))
	}
	if regions[0].XMin != 0 || regions[0].XMax != 612 {
		t.Errorf("expected full-width region, got %+v", regions[0])
	}
}

func TestColumnDetectorSingleColumn(t *testing.T) {
	chars := fillRegion(50, 550)

	d := NewColumnDetector()
	regions := d.Detect(chars, 612, 792)

	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
}

func TestColumnDetectorTwoColumns(t *testing.T) {
	var chars []text.Char
	chars = append(chars, fillRegion(50, 280)...)
	chars = append(chars, fillRegion(330, 560)...)

	d := NewColumnDetector()
	regions := d.Detect(chars, 612, 792)

	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d: %+v", len(regions), regions)
	}
	if regions[0].XMin >= regions[0].XMax {
		t.Errorf("degenerate first region: %+v", regions[0])
	}
	if regions[0].XMax > regions[1].XMin {
		t.Errorf("regions overlap: %+v and %+v", regions[0], regions[1])
	}
}

func TestColumnDetectorShortGapIsNotAGutter(t *testing.T) {
	// Both bands occupy only a small vertical slice of the page, so the gap
	// between them does not span enough height to count as a gutter.
	var chars []text.Char
	for x := 50.0; x < 280; x += 10 {
		chars = append(chars, makeChar("a", x, 700))
	}
	for x := 330.0; x < 560; x += 10 {
		chars = append(chars, makeChar("a", x, 700))
	}

	d := NewColumnDetector()
	regions := d.Detect(chars, 612, 792)

	if len(regions) != 1 {
		t.Fatalf("expected 1 region for short bands, got %d", len(regions))
	}
}

func TestSplitAssignsByCenter(t *testing.T) {
	regions := []ColumnRegion{
		{XMin: 0, XMax: 300},
		{XMin: 300, XMax: 612},
	}
	chars := []text.Char{
		makeChar("L", 100, 700),
		makeChar("R", 400, 700),
	}

	groups := Split(chars, regions)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0]) != 1 || groups[0][0].Text != "L" {
		t.Errorf("expected left group to hold L, got %+v", groups[0])
	}
	if len(groups[1]) != 1 || groups[1][0].Text != "R" {
		t.Errorf("expected right group to hold R, got %+v", groups[1])
	}
}

func TestSplitNearestRegionFallback(t *testing.T) {
	regions := []ColumnRegion{
		{XMin: 100, XMax: 300},
		{XMin: 400, XMax: 600},
	}
	// Center falls in the gutter; the nearest region takes it.
	chars := []text.Char{makeChar("x", 310, 700)}

	groups := Split(chars, regions)

	if len(groups[0]) != 1 {
		t.Errorf("expected gutter char assigned to nearest region, got %+v", groups)
	}
}

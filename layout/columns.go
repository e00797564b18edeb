package layout

import (
	"math"

	"github.com/tsawler/pagemark/text"
)

// ColumnRegion represents a detected column as a horizontal interval.
// A single-column page yields exactly one region spanning the full width.
type ColumnRegion struct {
	// XMin is the left edge of the column
	XMin float64

	// XMax is the right edge of the column
	XMax float64
}

// Width returns the width of the region.
func (r ColumnRegion) Width() float64 {
	return r.XMax - r.XMin
}

// CenterX returns the horizontal center of the region.
func (r ColumnRegion) CenterX() float64 {
	return (r.XMin + r.XMax) / 2
}

// ColumnConfig holds configuration for column detection
type ColumnConfig struct {
	// BinWidth is the histogram bin width in points for the x-position
	// projection (default: 5.0)
	BinWidth float64

	// MinGutterWidthMultiplier is the minimum gutter width as a multiple of
	// the average character width (default: 2.0)
	MinGutterWidthMultiplier float64

	// MinGutterHeightFraction is the fraction of the page height that a
	// column adjacent to a gutter must span for the gutter to be accepted
	// (default: 0.6)
	MinGutterHeightFraction float64
}

// DefaultColumnConfig returns sensible default configuration
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		BinWidth:                 5.0,
		MinGutterWidthMultiplier: 2.0,
		MinGutterHeightFraction:  0.6,
	}
}

// ColumnDetector finds vertical whitespace gutters that separate independent
// reading columns
type ColumnDetector struct {
	config ColumnConfig
}

// NewColumnDetector creates a new column detector with default configuration
func NewColumnDetector() *ColumnDetector {
	return &ColumnDetector{
		config: DefaultColumnConfig(),
	}
}

// NewColumnDetectorWithConfig creates a column detector with custom configuration
func NewColumnDetectorWithConfig(config ColumnConfig) *ColumnDetector {
	return &ColumnDetector{
		config: config,
	}
}

// Detect finds column regions on a page.
//
// It builds a fixed-width horizontal occupancy histogram over the characters,
// tracking the vertical span per bin. A contiguous run of empty bins wider
// than the average character width times MinGutterWidthMultiplier is a gutter
// candidate; it is accepted only when an adjacent column spans at least
// MinGutterHeightFraction of the page height. Accepted gutters partition the
// page left to right; regions containing no characters are dropped.
//
// Empty or degenerate input returns a single full-width region.
func (d *ColumnDetector) Detect(chars []text.Char, pageWidth, pageHeight float64) []ColumnRegion {
	fullPage := []ColumnRegion{{XMin: 0, XMax: pageWidth}}

	if len(chars) == 0 || pageWidth <= 0 || pageHeight <= 0 {
		return fullPage
	}

	// Average width of visible characters drives the minimum gutter width.
	widthSum := 0.0
	visible := 0
	for _, c := range chars {
		if c.IsWhitespace() {
			continue
		}
		widthSum += c.Width
		visible++
	}
	if visible == 0 {
		return fullPage
	}
	avgCharWidth := widthSum / float64(visible)
	minGutterWidth := avgCharWidth * d.config.MinGutterWidthMultiplier

	numBins := int(pageWidth/d.config.BinWidth) + 1
	binYMin := make([]float64, numBins)
	binYMax := make([]float64, numBins)
	binCount := make([]int, numBins)
	for i := range binYMin {
		binYMin[i] = math.Inf(1)
		binYMax[i] = math.Inf(-1)
	}

	for _, c := range chars {
		if c.IsWhitespace() {
			continue
		}
		start := int(c.X / d.config.BinWidth)
		end := int((c.X+c.Width)/d.config.BinWidth) + 1
		if start < 0 {
			start = 0
		}
		if start > numBins-1 {
			start = numBins - 1
		}
		if end > numBins {
			end = numBins
		}
		for b := start; b < end; b++ {
			if c.BaselineY < binYMin[b] {
				binYMin[b] = c.BaselineY
			}
			if c.BaselineY > binYMax[b] {
				binYMax[b] = c.BaselineY
			}
			binCount[b]++
		}
	}

	gutters := d.findGutters(binCount, binYMin, binYMax, minGutterWidth, pageHeight)
	if len(gutters) == 0 {
		return fullPage
	}

	// Partition the page at the gutters.
	var regions []ColumnRegion
	prevX := 0.0
	for _, g := range gutters {
		if g.left > prevX {
			regions = append(regions, ColumnRegion{XMin: prevX, XMax: g.left})
		}
		prevX = g.right
	}
	if prevX < pageWidth {
		regions = append(regions, ColumnRegion{XMin: prevX, XMax: pageWidth})
	}

	// Drop regions that contain no characters.
	var occupied []ColumnRegion
	for _, reg := range regions {
		for _, c := range chars {
			if !c.IsWhitespace() && c.X >= reg.XMin && c.X < reg.XMax {
				occupied = append(occupied, reg)
				break
			}
		}
	}

	if len(occupied) == 0 {
		return fullPage
	}
	return occupied
}

// gutter is a horizontal interval of empty histogram bins
type gutter struct {
	left, right float64
}

// findGutters scans the occupancy histogram for qualifying gutters
func (d *ColumnDetector) findGutters(binCount []int, binYMin, binYMax []float64, minGutterWidth, pageHeight float64) []gutter {
	var gutters []gutter
	runStart := -1

	for i, count := range binCount {
		if count == 0 {
			if runStart < 0 {
				runStart = i
			}
			continue
		}

		if runStart >= 0 {
			xStart := float64(runStart) * d.config.BinWidth
			xEnd := float64(i) * d.config.BinWidth

			if xEnd-xStart >= minGutterWidth {
				// The column beside the gutter must span enough page height.
				// Accumulate the y-span over every bin on each side rather
				// than the single adjacent bin.
				leftSpan := spanOverBins(binYMin[:runStart], binYMax[:runStart])
				rightSpan := spanOverBins(binYMin[i:], binYMax[i:])

				if maxFloat(leftSpan, rightSpan) >= pageHeight*d.config.MinGutterHeightFraction {
					gutters = append(gutters, gutter{left: xStart, right: xEnd})
				}
			}
			runStart = -1
		}
	}

	return gutters
}

// spanOverBins returns the combined vertical span of a bin range
func spanOverBins(yMin, yMax []float64) float64 {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for i := range yMin {
		if yMin[i] < lo {
			lo = yMin[i]
		}
		if yMax[i] > hi {
			hi = yMax[i]
		}
	}
	if hi > lo {
		return hi - lo
	}
	return 0
}

// Split assigns characters to column regions by center-x. A character whose
// center falls outside every region goes to the nearest region by center
// distance. Whitespace characters are kept so word segmentation still sees
// explicit space breaks.
func Split(chars []text.Char, regions []ColumnRegion) [][]text.Char {
	groups := make([][]text.Char, len(regions))
	if len(regions) == 0 {
		return groups
	}

	for _, c := range chars {
		center := c.CenterX()
		assigned := false
		for i, reg := range regions {
			if center >= reg.XMin && center < reg.XMax {
				groups[i] = append(groups[i], c)
				assigned = true
				break
			}
		}
		if !assigned {
			nearest := 0
			best := absFloat(center - regions[0].CenterX())
			for i, reg := range regions[1:] {
				if d := absFloat(center - reg.CenterX()); d < best {
					best = d
					nearest = i + 1
				}
			}
			groups[nearest] = append(groups[nearest], c)
		}
	}

	return groups
}

// maxFloat returns the larger of two float64 values
func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

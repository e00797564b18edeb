package pagemark

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tsawler/pagemark/layout"
	"github.com/tsawler/pagemark/markdown"
	"github.com/tsawler/pagemark/text"
)

// Convert renders the whole document as Markdown.
//
// The pipeline runs in three stages. Stage A fetches every page
// sequentially, resolves tagged pages through the structure tree bridge, and
// clusters the remaining pages' font sizes into an immutable heading map.
// Stage B classifies heuristic pages concurrently against that map. Stage C
// concatenates the per-page paragraphs in page order.
//
// Conversion is fail-fast: the first page whose data cannot be fetched
// aborts the whole document with ErrPageAccess or ErrTextLayer.
func (c *Converter) Convert(ctx context.Context, src TextSource) (string, error) {
	if src == nil {
		return "", fmt.Errorf("%w: nil source", ErrPageAccess)
	}

	pageCount := src.PageCount()
	c.log.WithField("pages", pageCount).Debug("starting conversion")

	if pageCount == 0 {
		return "", nil
	}

	structSrc, _ := src.(StructureSource)

	// Stage A: fetch pages, resolve tagged pages, gather font sizes.
	resolved := make([][]layout.Paragraph, pageCount)
	pending := make([]pendingPage, 0, pageCount)
	var fontSizes []float64

	for i := 0; i < pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if structSrc != nil {
			nodes, err := structSrc.Tree(ctx, i)
			if err != nil {
				// Tree absence is not fatal; the page still has a text layer.
				c.log.WithField("page", i).WithError(err).Warn("structure tree unavailable, using heuristics")
			} else if len(nodes) > 0 {
				if paragraphs := c.bridge.Paragraphs(nodes); len(paragraphs) > 0 {
					c.log.WithField("page", i).Debug("using structure tree")
					resolved[i] = paragraphs
					continue
				}
			}
		}

		page, err := src.Page(ctx, i)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrTextLayer, i, err)
		}

		chars := c.prepareChars(page)
		pending = append(pending, pendingPage{index: i, page: page, chars: chars})

		for _, ch := range chars {
			if !ch.IsWhitespace() {
				fontSizes = append(fontSizes, ch.FontSize)
			}
		}
	}

	headings := c.buildHeadingMap(fontSizes)

	// Stage B: classify heuristic pages concurrently. The heading map is
	// immutable from here on, so pages share it without locking.
	c.classifyPages(pending, headings, resolved)

	// Stage C
	return markdown.Assemble(resolved), nil
}

// pendingPage is a fetched page awaiting heuristic classification
type pendingPage struct {
	index int
	page  text.Page
	chars []text.Char
}

// prepareChars normalizes a page's characters and applies the margin, font
// size, and page number filters.
func (c *Converter) prepareChars(page text.Page) []text.Char {
	chars := text.NormalizeChars(page.Chars)

	topCutoff := page.Height * (1.0 - c.config.TopMarginFraction)
	bottomCutoff := page.Height * c.config.BottomMarginFraction

	filtered := chars[:0]
	for _, ch := range chars {
		if ch.BaselineY > topCutoff || ch.BaselineY < bottomCutoff {
			continue
		}
		if ch.FontSize < c.config.MinFontSize {
			continue
		}
		filtered = append(filtered, ch)
	}

	if c.config.DropPageNumbers {
		filtered = c.dropPageNumbers(filtered)
	}

	return filtered
}

// dropPageNumbers removes short numeric-only words that sit alone on their
// baseline. Words are resegmented here because the check needs word-level
// granularity before column detection runs.
func (c *Converter) dropPageNumbers(chars []text.Char) []text.Char {
	words := c.segmenter.Words(chars)
	if len(words) == 0 {
		return chars
	}

	const baselineTolerance = 3.0

	var drop []text.Word
	for i, w := range words {
		if !isPageNumberText(w.Text) {
			continue
		}
		alone := true
		for j, other := range words {
			if j == i {
				continue
			}
			if absFloat(other.BaselineY-w.BaselineY) < baselineTolerance {
				alone = false
				break
			}
		}
		if alone {
			drop = append(drop, w)
		}
	}

	if len(drop) == 0 {
		return chars
	}

	kept := chars[:0]
	for _, ch := range chars {
		if ch.IsWhitespace() || !inAnyWord(ch, drop) {
			kept = append(kept, ch)
		}
	}
	return kept
}

// isPageNumberText reports whether a word looks like a bare page number
func isPageNumberText(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// inAnyWord reports whether a character falls inside one of the given words
func inAnyWord(ch text.Char, words []text.Word) bool {
	const baselineTolerance = 3.0
	for _, w := range words {
		if absFloat(ch.BaselineY-w.BaselineY) < baselineTolerance &&
			ch.CenterX() >= w.XStart && ch.CenterX() <= w.XEnd {
			return true
		}
	}
	return false
}

// buildHeadingMap clusters the document's font sizes and assigns heading
// levels. An empty size list yields an empty map, which classifies
// everything as body.
func (c *Converter) buildHeadingMap(fontSizes []float64) layout.HeadingMap {
	if len(fontSizes) == 0 {
		return layout.HeadingMap{}
	}

	clusters := layout.ClusterFontSizes(fontSizes, c.config.Clusters)
	headings := layout.AssignHeadingLevels(clusters, c.config.Heading)
	c.log.WithField("clusters", len(clusters)).Debug("built heading map")
	return headings
}

// classifyPages runs the heuristic path for each pending page on a bounded
// worker pool and stores results by page index.
func (c *Converter) classifyPages(pages []pendingPage, headings layout.HeadingMap, out [][]layout.Paragraph) {
	if len(pages) == 0 {
		return
	}

	workers := c.config.Workers
	if workers > len(pages) {
		workers = len(pages)
	}

	jobs := make(chan pendingPage)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				out[p.index] = c.classifyPage(p, headings)
			}
		}()
	}

	for _, p := range pages {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
}

// classifyPage runs segmentation, column-aware grouping, and classification
// for one page.
func (c *Converter) classifyPage(p pendingPage, headings layout.HeadingMap) []layout.Paragraph {
	if len(p.chars) == 0 {
		return nil
	}

	regions := c.columns.Detect(p.chars, p.page.Width, p.page.Height)
	groups := layout.Split(p.chars, regions)

	var paragraphs []layout.Paragraph
	for _, group := range groups {
		words := c.segmenter.Words(group)
		lines := c.lines.Group(words)
		paragraphs = append(paragraphs, c.paragraphs.Group(lines)...)
	}

	return c.classifier.Classify(paragraphs, headings)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

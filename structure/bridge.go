package structure

import (
	"strings"

	"github.com/tsawler/pagemark/layout"
	"github.com/tsawler/pagemark/text"
)

// defaultFontSize stands in for blocks whose font size is unknown
const defaultFontSize = 12.0

// BridgeConfig holds configuration for structure tree conversion
type BridgeConfig struct {
	// MinHeadingRatio is the minimum font size ratio over body text for a
	// declared heading to be accepted (default: 1.15)
	MinHeadingRatio float64

	// MinHeadingGap is the minimum font size difference in points over body
	// text for a declared heading to be accepted (default: 2.0)
	MinHeadingGap float64

	// MaxHeadingWords is the word count ceiling above which a declared
	// heading is demoted to body (default: 12)
	MaxHeadingWords int
}

// DefaultBridgeConfig returns sensible default configuration
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		MinHeadingRatio: 1.15,
		MinHeadingGap:   2.0,
		MaxHeadingWords: 12,
	}
}

// Bridge converts structure tree nodes into layout paragraphs
type Bridge struct {
	config BridgeConfig
}

// NewBridge creates a new bridge with default configuration
func NewBridge() *Bridge {
	return &Bridge{
		config: DefaultBridgeConfig(),
	}
}

// NewBridgeWithConfig creates a bridge with custom configuration
func NewBridgeWithConfig(config BridgeConfig) *Bridge {
	return &Bridge{
		config: config,
	}
}

// Paragraphs converts a forest of structure tree nodes into paragraphs.
//
// Declared heading levels are validated against the page's estimated body
// font size and a word count ceiling; claims that fail are demoted to body
// text. List labels are prepended to the item's text as a leading word.
// Leaves with empty or whitespace-only text are skipped.
func (b *Bridge) Paragraphs(nodes []Node) []layout.Paragraph {
	bodySize := estimateBodyFontSize(nodes)

	var paragraphs []layout.Paragraph
	b.convert(nodes, bodySize, &paragraphs)
	return paragraphs
}

func (b *Bridge) convert(nodes []Node, bodySize float64, out *[]layout.Paragraph) {
	for i := range nodes {
		node := &nodes[i]

		if len(node.Children) > 0 {
			b.convert(node.Children, bodySize, out)
			continue
		}

		if strings.TrimSpace(node.Text) == "" {
			continue
		}

		fullText := node.Text
		isListItem := node.Role == RoleListItem
		if isListItem && node.Label != "" {
			fullText = node.Label + " " + node.Text
		}

		fontSize := node.FontSize
		if fontSize == 0 {
			fontSize = defaultFontSize
		}

		words := strings.Fields(fullText)
		if len(words) == 0 {
			continue
		}

		level := 0
		if node.Role == RoleHeading {
			level = b.validateHeading(node.Level, fontSize, bodySize, len(words))
		}

		line := layout.Line{
			Words:            make([]text.Word, len(words)),
			DominantFontSize: fontSize,
			Bold:             node.Bold,
			Italic:           node.Italic,
		}
		for j, w := range words {
			line.Words[j] = text.Word{
				Text:     w,
				FontSize: fontSize,
				Bold:     node.Bold,
				Italic:   node.Italic,
			}
		}

		*out = append(*out, layout.Paragraph{
			Lines:            []layout.Line{line},
			DominantFontSize: fontSize,
			HeadingLevel:     level,
			IsListItem:       isListItem,
			Bold:             node.Bold,
			Italic:           node.Italic,
		})
	}
}

// validateHeading accepts a declared heading level only when the font size is
// meaningfully larger than body text and the word count is low
func (b *Bridge) validateHeading(level int, fontSize, bodySize float64, wordCount int) int {
	if level <= 0 {
		return 0
	}

	ratioOK := fontSize >= bodySize*b.config.MinHeadingRatio
	gapOK := fontSize-bodySize >= b.config.MinHeadingGap
	wordsOK := wordCount <= b.config.MaxHeadingWords

	if (ratioOK || gapOK) && wordsOK {
		return level
	}
	return 0
}

// estimateBodyFontSize returns the most common font size across all non-empty
// leaf nodes, or the default when the forest has no text
func estimateBodyFontSize(nodes []Node) float64 {
	var sizes []float64
	collectFontSizes(nodes, &sizes)

	if len(sizes) == 0 {
		return defaultFontSize
	}
	return layout.DominantFontSize(sizes)
}

func collectFontSizes(nodes []Node, sizes *[]float64) {
	for i := range nodes {
		node := &nodes[i]
		if len(node.Children) > 0 {
			collectFontSizes(node.Children, sizes)
			continue
		}
		if strings.TrimSpace(node.Text) == "" {
			continue
		}
		if node.FontSize > 0 {
			*sizes = append(*sizes, node.FontSize)
		} else {
			*sizes = append(*sizes, defaultFontSize)
		}
	}
}

// Package pagemark reconstructs document layout from positioned PDF text and
// renders it as Markdown.
//
// Input is raw geometry: per-page character records carrying position,
// dimensions, font size, and style flags. The converter segments characters
// into words, groups words into lines and lines into paragraphs, detects
// multi-column layouts, infers heading levels from the document-wide font
// size distribution, and assembles the classified paragraphs into one
// Markdown string. When a page carries a structure tree, pagemark consumes
// the pre-tagged blocks instead, re-validating declared headings against
// font size evidence.
//
// Basic usage:
//
//	c := pagemark.NewConverter()
//	md, err := c.Convert(ctx, source)
//	if err != nil {
//	    // handle error
//	}
//
// Sources implement TextSource and, optionally, StructureSource.
package pagemark

import (
	"context"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/pagemark/layout"
	"github.com/tsawler/pagemark/structure"
	"github.com/tsawler/pagemark/text"
)

// TextSource provides per-page character geometry. Implementations wrap a
// PDF text-layer reader; pagemark itself never parses PDF files.
type TextSource interface {
	// PageCount returns the number of pages in the document
	PageCount() int

	// Page returns the character data for the page at the given zero-based
	// index
	Page(ctx context.Context, index int) (text.Page, error)
}

// StructureSource optionally provides per-page structure trees for tagged
// documents. Returning an empty forest for a page routes that page through
// the heuristic path.
type StructureSource interface {
	// Tree returns the structure tree forest for the page at the given
	// zero-based index
	Tree(ctx context.Context, index int) ([]structure.Node, error)
}

// Config holds configuration for a Converter.
type Config struct {
	// Clusters is the number of font-size clusters used for heading
	// inference, typically 3-5 (default: 4)
	Clusters int

	// Workers bounds per-page classification concurrency; 0 means
	// runtime.NumCPU (default: 0)
	Workers int

	// TopMarginFraction is the fraction of page height treated as header
	// margin; characters above it are dropped (default: 0.05)
	TopMarginFraction float64

	// BottomMarginFraction is the fraction of page height treated as footer
	// margin; characters below it are dropped (default: 0.05)
	BottomMarginFraction float64

	// MinFontSize drops characters smaller than this many points, which are
	// almost always rendering artifacts (default: 4.0)
	MinFontSize float64

	// DropPageNumbers removes short numeric-only words that sit alone on
	// their baseline (default: true)
	DropPageNumbers bool

	// Logger receives per-stage diagnostics; nil discards them
	Logger *logrus.Logger

	// Segmenter configures word segmentation
	Segmenter text.SegmenterConfig

	// Line configures line grouping
	Line layout.LineConfig

	// Column configures column detection
	Column layout.ColumnConfig

	// Paragraph configures paragraph grouping
	Paragraph layout.ParagraphConfig

	// Heading configures heading level assignment
	Heading layout.HeadingConfig

	// Classifier configures paragraph classification
	Classifier layout.ClassifierConfig

	// Bridge configures structure tree conversion
	Bridge structure.BridgeConfig
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Clusters:             4,
		Workers:              0,
		TopMarginFraction:    0.05,
		BottomMarginFraction: 0.05,
		MinFontSize:          4.0,
		DropPageNumbers:      true,
		Segmenter:            text.DefaultSegmenterConfig(),
		Line:                 layout.DefaultLineConfig(),
		Column:               layout.DefaultColumnConfig(),
		Paragraph:            layout.DefaultParagraphConfig(),
		Heading:              layout.DefaultHeadingConfig(),
		Classifier:           layout.DefaultClassifierConfig(),
		Bridge:               structure.DefaultBridgeConfig(),
	}
}

// Converter turns positioned page text into a Markdown document.
type Converter struct {
	config     Config
	log        *logrus.Logger
	segmenter  *text.Segmenter
	lines      *layout.LineGrouper
	columns    *layout.ColumnDetector
	paragraphs *layout.ParagraphGrouper
	classifier *layout.Classifier
	bridge     *structure.Bridge
}

// NewConverter creates a converter with default configuration.
func NewConverter() *Converter {
	return NewConverterWithConfig(DefaultConfig())
}

// NewConverterWithConfig creates a converter with custom configuration.
func NewConverterWithConfig(config Config) *Converter {
	if config.Clusters <= 0 {
		config.Clusters = 4
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}

	log := config.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Converter{
		config:     config,
		log:        log,
		segmenter:  text.NewSegmenterWithConfig(config.Segmenter),
		lines:      layout.NewLineGrouperWithConfig(config.Line),
		columns:    layout.NewColumnDetectorWithConfig(config.Column),
		paragraphs: layout.NewParagraphGrouperWithConfig(config.Paragraph),
		classifier: layout.NewClassifierWithConfig(config.Classifier),
		bridge:     structure.NewBridgeWithConfig(config.Bridge),
	}
}

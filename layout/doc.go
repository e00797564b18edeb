// Package layout reconstructs document structure from positioned words.
//
// This package analyzes word geometry to recover lines, columns, paragraphs,
// and heading levels from a flat text layer.
//
// # Detectors
//
// Each detection concern has its own component:
//
//   - [LineGrouper] - groups words sharing a baseline into lines
//   - [ColumnDetector] - finds vertical whitespace gutters and partitions
//     characters into column regions
//   - [ParagraphGrouper] - merges lines into paragraphs and flags list items
//   - [Classifier] - assigns heading levels to paragraphs via the HeadingMap
//
// # Font-Size Clustering
//
// Heading inference is driven by a document-global pass: [ClusterFontSizes]
// buckets every character's font size into k clusters, and
// [AssignHeadingLevels] turns the clusters into an immutable [HeadingMap].
// The most populated cluster is always the body; remaining clusters qualify
// as headings only when meaningfully larger than the body.
//
// # Configuration
//
// Every detector can be configured independently:
//
//	config := layout.DefaultParagraphConfig()
//	config.GapMultiplier = 1.8
//	grouper := layout.NewParagraphGrouperWithConfig(config)
//
// The defaults are empirically tuned for typical born-digital documents;
// dense slide decks and unusual column layouts may need adjustment.
package layout

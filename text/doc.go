// Package text provides the character-level input model and word segmentation
// for layout reconstruction.
//
// This package defines [Char], the positioned, font-annotated character record
// supplied by the PDF text layer, and groups character runs into [Word] values
// via horizontal-gap detection.
//
// # Coordinate Convention
//
// All coordinates follow the PDF convention: the origin is the bottom-left
// corner of the page and BaselineY increases upward, so a larger BaselineY
// means higher on the page.
//
// # Word Segmentation
//
// The [Segmenter] converts raw characters into words:
//
//	seg := text.NewSegmenter()
//	words := seg.Words(chars)
//
// A space character always closes the current word. For non-space characters,
// the word is closed when the horizontal gap to the previous character exceeds
// a fraction of the average font size, or when the baseline shifts by more
// than a fraction of the smaller font size.
//
// # Normalization
//
// [NormalizeText] cleans character text before segmentation: Unicode NFC
// normalization, soft-hyphen handling, and control-character removal.
package text

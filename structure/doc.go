// Package structure converts a PDF structure tree into the same paragraph
// representation the heuristic layout path produces.
//
// Tagged PDFs carry a forest of semantically labeled content blocks. The
// Bridge walks that forest, re-validates declared headings against font size
// evidence so a broken tree cannot mark body text as headings, and emits
// layout.Paragraph values that downstream markdown assembly consumes without
// knowing which path produced them.
package structure

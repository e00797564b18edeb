// Package markdown renders classified layout paragraphs as a Markdown
// document.
//
// Headings become #-prefixed lines, list items keep their line breaks, and
// body paragraphs carry run-length-encoded bold/italic markup: a maximal
// consecutive span of words sharing the same emphasis is wrapped in one
// delimiter pair rather than per word.
package markdown

package markdown

import (
	"strings"

	"github.com/tsawler/pagemark/layout"
	"github.com/tsawler/pagemark/text"
)

// Assemble renders classified paragraphs from all pages as one Markdown
// string. Pages and paragraphs are separated by blank lines; page order and
// paragraph order are preserved.
func Assemble(pages [][]layout.Paragraph) string {
	var out strings.Builder

	for pageIdx, paragraphs := range pages {
		if pageIdx > 0 && out.Len() > 0 {
			out.WriteString("\n\n")
		}

		for paraIdx := range paragraphs {
			if paraIdx > 0 {
				out.WriteString("\n\n")
			}
			renderParagraph(&paragraphs[paraIdx], &out)
		}
	}

	return out.String()
}

func renderParagraph(p *layout.Paragraph, out *strings.Builder) {
	switch {
	case p.HeadingLevel > 0:
		out.WriteString(strings.Repeat("#", p.HeadingLevel))
		out.WriteByte(' ')
		out.WriteString(p.Text())
	case p.IsListItem:
		// Each line stays on its own line so wrapped list items keep
		// their markers aligned.
		for i := range p.Lines {
			if i > 0 {
				out.WriteByte('\n')
			}
			out.WriteString(RenderWords(p.Lines[i].Words))
		}
	default:
		var words []text.Word
		for i := range p.Lines {
			words = append(words, p.Lines[i].Words...)
		}
		out.WriteString(RenderWords(words))
	}
}

// RenderWords renders words with run-length-encoded bold/italic markup. A
// maximal run of words sharing the same emphasis state is wrapped in a single
// delimiter pair: `**…**` for bold, `*…*` for italic, `***…***` for both.
func RenderWords(words []text.Word) string {
	if len(words) == 0 {
		return ""
	}

	var out strings.Builder
	i := 0

	for i < len(words) {
		bold := words[i].Bold
		italic := words[i].Italic

		start := i
		for i < len(words) && words[i].Bold == bold && words[i].Italic == italic {
			i++
		}

		parts := make([]string, 0, i-start)
		for _, w := range words[start:i] {
			parts = append(parts, w.Text)
		}
		run := strings.Join(parts, " ")

		if out.Len() > 0 {
			out.WriteByte(' ')
		}

		marker := emphasisMarker(bold, italic)
		out.WriteString(marker)
		out.WriteString(run)
		out.WriteString(marker)
	}

	return out.String()
}

func emphasisMarker(bold, italic bool) string {
	switch {
	case bold && italic:
		return "***"
	case bold:
		return "**"
	case italic:
		return "*"
	default:
		return ""
	}
}

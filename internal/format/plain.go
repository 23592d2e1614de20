package format

import (
	"fmt"
	"strings"

	"pkt.systems/md2docx/internal/docx"
)

// OutlineRenderer formats built document containers as plain text lines.
type OutlineRenderer struct{}

// NewOutlineRenderer returns a default outline renderer.
func NewOutlineRenderer() *OutlineRenderer {
	return &OutlineRenderer{}
}

// Outline renders every container of doc in order.
func (o *OutlineRenderer) Outline(doc *docx.Document) []string {
	if doc == nil {
		return nil
	}
	lines := make([]string, 0, len(doc.Paragraphs()))
	for _, p := range doc.Paragraphs() {
		lines = append(lines, o.FormatParagraph(p)...)
	}
	return lines
}

// FormatParagraph converts one container into user-facing lines.
func (o *OutlineRenderer) FormatParagraph(p *docx.Paragraph) []string {
	if p == nil {
		return nil
	}
	label := paragraphLabel(p)
	if p.Centered() {
		label += " [center]"
	}
	text := formatRuns(p)
	if text == "" {
		return []string{label}
	}
	return []string{label + " " + text}
}

func paragraphLabel(p *docx.Paragraph) string {
	switch {
	case p.Level > 0:
		return fmt.Sprintf("h%d", p.Level)
	case p.Style == docx.StyleListBullet:
		return "bullet"
	case p.Style == docx.StyleListNumber:
		return "number"
	case len(p.Runs) == 0:
		return "blank"
	default:
		return "para"
	}
}

// formatRuns re-applies markers so resolved styling is visible. Heading runs
// are bold by construction and are not marked.
func formatRuns(p *docx.Paragraph) string {
	var b strings.Builder
	for _, run := range p.Runs {
		marker := ""
		switch {
		case run.Bold && p.Level == 0:
			marker = "**"
		case run.Italic:
			marker = "*"
		}
		b.WriteString(marker)
		b.WriteString(run.Text)
		b.WriteString(marker)
	}
	return b.String()
}

package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"pkt.systems/md2docx/internal/docx"
)

type frontMatterEnvelope struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Subject     string `yaml:"subject"`
	Description string `yaml:"description"`
	Keywords    any    `yaml:"keywords"`
	ID          string `yaml:"id"`
}

// splitFrontMatter separates a leading YAML front matter block from the
// markdown body. ok is false when source has no complete block, the block does
// not parse, or it sets none of the known keys; body is then source unchanged.
func splitFrontMatter(source []byte) (docx.Properties, []byte, bool, error) {
	if !hasFrontMatter(source) {
		return docx.Properties{}, source, false, nil
	}
	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return docx.Properties{}, source, false, fmt.Errorf("parse frontmatter: %w", err)
	}
	if !meta.known() {
		return docx.Properties{}, source, false, nil
	}
	props := docx.Properties{
		Title:       strings.TrimSpace(meta.Title),
		Creator:     strings.TrimSpace(meta.Author),
		Subject:     strings.TrimSpace(meta.Subject),
		Description: strings.TrimSpace(meta.Description),
		Keywords:    joinKeywords(meta.Keywords),
		Identifier:  strings.TrimSpace(meta.ID),
	}
	return props, body, true, nil
}

// known reports whether the block set at least one recognised key. A pair of
// horizontal rules around ordinary markdown decodes to an empty envelope.
func (m frontMatterEnvelope) known() bool {
	return strings.TrimSpace(m.Title) != "" ||
		strings.TrimSpace(m.Author) != "" ||
		strings.TrimSpace(m.Subject) != "" ||
		strings.TrimSpace(m.Description) != "" ||
		strings.TrimSpace(m.ID) != "" ||
		joinKeywords(m.Keywords) != ""
}

// hasFrontMatter reports whether the first line is a bare --- and a later
// line closes the block.
func hasFrontMatter(source []byte) bool {
	lines := SplitLines(source)
	if len(lines) < 2 || lines[0] != "---" {
		return false
	}
	for _, line := range lines[1:] {
		if line == "---" {
			return true
		}
	}
	return false
}

func joinKeywords(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

package markdown

import (
	"regexp"
	"strings"
)

// LineKind is the structural role of a source line.
type LineKind int

const (
	// LineSkip produces no container.
	LineSkip LineKind = iota
	LineHeading
	LineBullet
	LineNumbered
	LineBlank
	LineParagraph
)

func (k LineKind) String() string {
	switch k {
	case LineSkip:
		return "skip"
	case LineHeading:
		return "heading"
	case LineBullet:
		return "bullet"
	case LineNumbered:
		return "numbered"
	case LineBlank:
		return "blank"
	case LineParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// SkipReason explains a LineSkip decision.
type SkipReason int

const (
	SkipNone SkipReason = iota
	// SkipRule is a horizontal rule (a line starting with ---).
	SkipRule
	// SkipHeadingLevel is a heading deeper than MaxHeadingLevel.
	SkipHeadingLevel
)

func (r SkipReason) String() string {
	switch r {
	case SkipRule:
		return "horizontal rule"
	case SkipHeadingLevel:
		return "heading level"
	default:
		return ""
	}
}

// MaxHeadingLevel is the deepest heading that produces a container.
const MaxHeadingLevel = 3

// Line is the classification of one source line.
type Line struct {
	Kind LineKind
	// Level is the heading level, including dropped levels above MaxHeadingLevel.
	Level   int
	Content string
	// Centered is only set on paragraphs.
	Centered bool
	// Spacer is set on blank lines that emit an empty paragraph (outside a list).
	Spacer bool
	Skip   SkipReason
}

// CenterFunc reports whether the paragraph at the zero-based line index
// should be centered.
type CenterFunc func(index int, line string) bool

// MetadataCenter centers paragraphs within the first maxLine lines that
// contain any of markers. With no markers nothing is centered.
func MetadataCenter(maxLine int, markers ...string) CenterFunc {
	kept := make([]string, 0, len(markers))
	for _, marker := range markers {
		if marker != "" {
			kept = append(kept, marker)
		}
	}
	return func(index int, line string) bool {
		if index >= maxLine {
			return false
		}
		for _, marker := range kept {
			if strings.Contains(line, marker) {
				return true
			}
		}
		return false
	}
}

// Classifier decides the structural role of source lines. The zero value
// never centers paragraphs.
type Classifier struct {
	Center CenterFunc
}

var numberedPattern = regexp.MustCompile(`^\d+\.\s*`)

// Classify classifies line at the zero-based index given whether the previous
// lines left a list open, and returns the updated list flag. Every line gets
// exactly one decision.
func (c Classifier) Classify(line string, index int, inList bool) (Line, bool) {
	if strings.HasPrefix(line, "---") {
		return Line{Kind: LineSkip, Skip: SkipRule}, inList
	}
	if strings.HasPrefix(line, "#") {
		trimmed := strings.TrimLeft(line, "#")
		level := len(line) - len(trimmed)
		if level > MaxHeadingLevel {
			return Line{Kind: LineSkip, Level: level, Skip: SkipHeadingLevel}, inList
		}
		return Line{Kind: LineHeading, Level: level, Content: strings.TrimSpace(trimmed)}, inList
	}
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return Line{Kind: LineBullet, Content: strings.TrimSpace(line[2:])}, true
	}
	if loc := numberedPattern.FindStringIndex(line); loc != nil {
		return Line{Kind: LineNumbered, Content: strings.TrimSpace(line[loc[1]:])}, true
	}
	if strings.TrimSpace(line) == "" {
		return Line{Kind: LineBlank, Spacer: !inList}, false
	}
	centered := c.Center != nil && c.Center(index, line)
	return Line{Kind: LineParagraph, Content: line, Centered: centered}, false
}

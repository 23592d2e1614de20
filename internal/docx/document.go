package docx

import "time"

// ParagraphStyle names a paragraph style defined in styles.xml.
type ParagraphStyle string

const (
	StyleNormal     ParagraphStyle = ""
	StyleListBullet ParagraphStyle = "ListBullet"
	StyleListNumber ParagraphStyle = "ListNumber"
)

// Alignment is the horizontal justification of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Font is the document default font. Size is in points.
type Font struct {
	Name string
	Size float64
}

// DefaultFont is the body font used when none is configured.
var DefaultFont = Font{Name: "Calibri", Size: 11}

// Properties are the package metadata written to docProps.
type Properties struct {
	Title       string
	Subject     string
	Creator     string
	Keywords    string
	Description string
	Identifier  string
	Application string
	Created     time.Time
}

// Run is a single styled text run. Size is in points; zero inherits the
// paragraph style.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   float64
}

// Paragraph is a container of runs: a heading, list item, or body paragraph.
type Paragraph struct {
	Style ParagraphStyle
	Align Alignment
	// Level is the heading level, zero for non-headings.
	Level int
	Runs  []Run

	forceBold bool
	runSize   float64
}

// AppendRun appends a run. Heading paragraphs force bold and their heading
// size onto every run.
func (p *Paragraph) AppendRun(text string, bold, italic bool) {
	p.Runs = append(p.Runs, Run{
		Text:   text,
		Bold:   bold || p.forceBold,
		Italic: italic,
		Size:   p.runSize,
	})
}

// Centered reports whether the paragraph is center aligned.
func (p *Paragraph) Centered() bool {
	return p.Align == AlignCenter
}

// OutlineLevel is the zero-based outline level written for headings.
func (p *Paragraph) OutlineLevel() int {
	if p.Level <= 0 {
		return 0
	}
	return p.Level - 1
}

// Document accumulates paragraphs in insertion order.
// Document is not safe for concurrent modification.
type Document struct {
	Properties Properties
	Font       Font

	paragraphs []*Paragraph
}

// New returns an empty document using font as the body default. A zero font
// falls back to DefaultFont.
func New(font Font) *Document {
	if font.Name == "" {
		font.Name = DefaultFont.Name
	}
	if font.Size <= 0 {
		font.Size = DefaultFont.Size
	}
	return &Document{Font: font}
}

// Paragraphs returns the containers in the order they were added.
func (d *Document) Paragraphs() []*Paragraph {
	return d.paragraphs
}

// AddHeading appends a heading container. Runs are bold at size points;
// level 1 is centered.
func (d *Document) AddHeading(level int, size float64) *Paragraph {
	p := &Paragraph{Level: level, forceBold: true, runSize: size}
	if level == 1 {
		p.Align = AlignCenter
	}
	return d.add(p)
}

// AddBullet appends a bulleted list item.
func (d *Document) AddBullet() *Paragraph {
	return d.add(&Paragraph{Style: StyleListBullet})
}

// AddNumbered appends a numbered list item. All numbered items share one
// numbering sequence.
func (d *Document) AddNumbered() *Paragraph {
	return d.add(&Paragraph{Style: StyleListNumber})
}

// AddParagraph appends a body paragraph.
func (d *Document) AddParagraph(centered bool) *Paragraph {
	p := &Paragraph{}
	if centered {
		p.Align = AlignCenter
	}
	return d.add(p)
}

func (d *Document) add(p *Paragraph) *Paragraph {
	d.paragraphs = append(d.paragraphs, p)
	return p
}

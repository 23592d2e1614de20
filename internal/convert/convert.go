package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"pkt.systems/md2docx/internal/appconfig"
	"pkt.systems/md2docx/internal/docx"
	"pkt.systems/md2docx/internal/logx"
	"pkt.systems/md2docx/internal/markdown"
)

// Options controls a conversion.
type Options struct {
	Font docx.Font
	// HeadingSizes are the point sizes of heading levels 1 to 3.
	HeadingSizes  [markdown.MaxHeadingLevel]float64
	CenterMaxLine int
	CenterMarkers []string
	FrontMatter   bool
	// Author fills the document creator when front matter does not.
	Author      string
	Application string
}

// DefaultOptions mirrors appconfig.DefaultConfig.
func DefaultOptions() Options {
	return OptionsFromConfig(appconfig.DefaultConfig())
}

// OptionsFromConfig maps loaded configuration onto conversion options.
func OptionsFromConfig(cfg appconfig.Config) Options {
	opts := Options{
		Font:          docx.Font{Name: cfg.Document.FontName, Size: cfg.Document.FontSize},
		CenterMaxLine: cfg.Center.MaxLine,
		CenterMarkers: append([]string(nil), cfg.Center.Markers...),
		FrontMatter:   cfg.Document.FrontMatter,
		Author:        cfg.Document.Author,
	}
	copy(opts.HeadingSizes[:], cfg.Document.HeadingSizes)
	return opts
}

// Stats counts the containers produced for one document.
type Stats struct {
	Lines      int
	Headings   int
	Bullets    int
	Numbered   int
	Paragraphs int
	Spacers    int
	Skipped    int
}

// Containers is the number of paragraphs added to the document.
func (s Stats) Containers() int {
	return s.Headings + s.Bullets + s.Numbered + s.Paragraphs + s.Spacers
}

// Result describes a completed file conversion.
type Result struct {
	Source string
	Output string
	Stats  Stats
}

// Converter turns markdown lines into document containers.
type Converter struct {
	opts       Options
	classifier markdown.Classifier
	now        func() time.Time
	newID      func() string
}

// New constructs a converter.
func New(opts Options) *Converter {
	return &Converter{
		opts:       opts,
		classifier: markdown.Classifier{Center: markdown.MetadataCenter(opts.CenterMaxLine, opts.CenterMarkers...)},
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// state is scoped to one document.
type state struct {
	inList bool
}

// Build classifies every line and appends its container to doc in line order.
func (c *Converter) Build(ctx context.Context, lines []string, doc *docx.Document) Stats {
	log := logx.Ctx(ctx)
	var st state
	stats := Stats{Lines: len(lines)}
	for i, raw := range lines {
		var line markdown.Line
		line, st.inList = c.classifier.Classify(raw, i, st.inList)
		switch line.Kind {
		case markdown.LineSkip:
			stats.Skipped++
			logx.WithLine(log, i).Debug("line skipped", "reason", line.Skip.String(), "level", line.Level)
		case markdown.LineHeading:
			stats.Headings++
			markdown.Resolve(line.Content, doc.AddHeading(line.Level, c.headingSize(line.Level)))
		case markdown.LineBullet:
			stats.Bullets++
			markdown.Resolve(line.Content, doc.AddBullet())
		case markdown.LineNumbered:
			stats.Numbered++
			markdown.Resolve(line.Content, doc.AddNumbered())
		case markdown.LineBlank:
			if line.Spacer {
				stats.Spacers++
				doc.AddParagraph(false)
			}
		case markdown.LineParagraph:
			stats.Paragraphs++
			markdown.Resolve(line.Content, doc.AddParagraph(line.Centered))
		}
	}
	return stats
}

func (c *Converter) headingSize(level int) float64 {
	if level < 1 || level > len(c.opts.HeadingSizes) {
		return 0
	}
	return c.opts.HeadingSizes[level-1]
}

// Document builds a complete document from markdown source, including
// properties taken from front matter when enabled.
func (c *Converter) Document(ctx context.Context, source []byte) (*docx.Document, Stats) {
	log := logx.Ctx(ctx)
	source = bytes.TrimPrefix(source, []byte("\ufeff"))

	var props docx.Properties
	if c.opts.FrontMatter {
		meta, body, ok, err := splitFrontMatter(source)
		if err != nil {
			log.Warn("front matter ignored", "err", err)
		}
		if ok {
			props = meta
			source = body
		}
	}

	doc := docx.New(c.opts.Font)
	stats := c.Build(ctx, SplitLines(source), doc)

	if props.Title == "" {
		props.Title = firstTitle(doc)
	}
	if props.Creator == "" {
		props.Creator = c.opts.Author
	}
	if props.Identifier == "" {
		props.Identifier = "urn:uuid:" + c.newID()
	}
	props.Application = c.opts.Application
	props.Created = c.now()
	doc.Properties = props
	return doc, stats
}

// ConvertFile converts the markdown file at src and saves the document to
// dst. Nothing is written unless the whole document was built.
func (c *Converter) ConvertFile(ctx context.Context, src, dst string) (Result, error) {
	log := logx.WithOutput(logx.WithSource(ctx, src), dst)
	ctx = logx.ContextWithSourceLogger(ctx, log, src)

	source, err := ReadSource(src)
	if err != nil {
		log.Error("source read failed", "err", err)
		return Result{}, err
	}
	doc, stats := c.Document(ctx, source)
	if err := doc.Save(dst); err != nil {
		log.Error("document save failed", "err", err)
		return Result{}, wrapSinkWriteError(dst, err)
	}
	log.Info("document converted", "lines", stats.Lines, "containers", stats.Containers(), "skipped", stats.Skipped)
	return Result{Source: src, Output: dst, Stats: stats}, nil
}

// ReadSource reads the whole markdown source.
func ReadSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapSourceReadError(path, err)
	}
	return data, nil
}

// SplitLines splits source into lines with trailing whitespace removed. \n,
// \r\n and a bare \r all end a line. A final line ending does not start an
// extra line.
func SplitLines(source []byte) []string {
	text := string(source)
	if text == "" {
		return nil
	}
	text = lineEndings.Replace(text)
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return lines
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// DefaultOutputPath replaces the extension of src with .docx, placing the
// file in dir when dir is set.
func DefaultOutputPath(src, dir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".docx"
	if strings.TrimSpace(dir) != "" {
		return filepath.Join(dir, base)
	}
	return filepath.Join(filepath.Dir(src), base)
}

func firstTitle(doc *docx.Document) string {
	for _, p := range doc.Paragraphs() {
		if p.Level != 1 {
			continue
		}
		var b strings.Builder
		for _, run := range p.Runs {
			b.WriteString(run.Text)
		}
		if title := strings.TrimSpace(b.String()); title != "" {
			return title
		}
	}
	return ""
}

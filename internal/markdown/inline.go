package markdown

import (
	"regexp"
	"strings"
)

// SpanKind identifies the inline markup a SpanMatch was recognised as.
type SpanKind int

const (
	// SpanBold is **text**.
	SpanBold SpanKind = iota
	// SpanItalic is *text*.
	SpanItalic
	// SpanLink is [label](target).
	SpanLink
)

func (k SpanKind) String() string {
	switch k {
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanLink:
		return "link"
	default:
		return "unknown"
	}
}

// SpanMatch is one recognised markup span. Start and End are byte offsets of
// the full span (delimiters included) within the scanned text.
type SpanMatch struct {
	Kind  SpanKind
	Text  string
	Start int
	End   int
	// Target is the link destination. It is recorded but never emitted; links
	// render as their label only.
	Target string
}

// Run is a styled slice of text.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Sink receives runs in emission order.
type Sink interface {
	AppendRun(text string, bold, italic bool)
}

// Runs is a Sink that collects runs into a slice.
type Runs []Run

// AppendRun implements Sink.
func (r *Runs) AppendRun(text string, bold, italic bool) {
	*r = append(*r, Run{Text: text, Bold: bold, Italic: italic})
}

// Bold before italic so a doubled marker is never read as two italic
// delimiters. RE2 alternation is leftmost-first, same as a backtracking engine.
var spanPattern = regexp.MustCompile(`\*\*(.+?)\*\*|\*(.+?)\*|\[(.+?)\]\((.+?)\)`)

// Matches returns the markup spans of text in order of occurrence. Spans
// never overlap.
func Matches(text string) []SpanMatch {
	if text == "" {
		return nil
	}
	found := spanPattern.FindAllStringSubmatchIndex(text, -1)
	if len(found) == 0 {
		return nil
	}
	matches := make([]SpanMatch, 0, len(found))
	for _, loc := range found {
		match := SpanMatch{Start: loc[0], End: loc[1]}
		switch {
		case loc[2] >= 0:
			match.Kind = SpanBold
			match.Text = text[loc[2]:loc[3]]
		case loc[4] >= 0:
			match.Kind = SpanItalic
			match.Text = text[loc[4]:loc[5]]
		default:
			match.Kind = SpanLink
			match.Text = text[loc[6]:loc[7]]
			match.Target = text[loc[8]:loc[9]]
		}
		matches = append(matches, match)
	}
	return matches
}

// Resolve appends the runs of text to sink, left to right. Plain text between
// and around spans is emitted as unstyled runs; unbalanced markers stay
// literal. Empty text appends nothing.
func Resolve(text string, sink Sink) {
	last := 0
	for _, match := range Matches(text) {
		if match.Start > last {
			sink.AppendRun(text[last:match.Start], false, false)
		}
		switch match.Kind {
		case SpanBold:
			sink.AppendRun(match.Text, true, false)
		case SpanItalic:
			sink.AppendRun(match.Text, false, true)
		case SpanLink:
			sink.AppendRun(match.Text, false, false)
		}
		last = match.End
	}
	if last < len(text) {
		sink.AppendRun(text[last:], false, false)
	}
}

// ParseInline resolves text into a slice of runs.
func ParseInline(text string) []Run {
	var runs Runs
	Resolve(text, &runs)
	return runs
}

// Plain returns text with recognised markup removed and link targets dropped.
func Plain(text string) string {
	var b strings.Builder
	for _, run := range ParseInline(text) {
		b.WriteString(run.Text)
	}
	return b.String()
}

package format

import (
	"reflect"
	"testing"

	"pkt.systems/md2docx/internal/docx"
)

func TestOutlineLabelsContainers(t *testing.T) {
	doc := docx.New(docx.DefaultFont)
	doc.AddHeading(1, 16).AppendRun("Title", false, false)
	doc.AddParagraph(true).AppendRun("Course RPN1", false, false)
	doc.AddParagraph(false)
	bullet := doc.AddBullet()
	bullet.AppendRun("Important", true, false)
	bullet.AppendRun(" note", false, false)
	doc.AddNumbered().AppendRun("step", false, true)

	got := NewOutlineRenderer().Outline(doc)
	want := []string{
		"h1 [center] Title",
		"para [center] Course RPN1",
		"blank",
		"bullet **Important** note",
		"number *step*",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected outline:\n%q", got)
	}
}

func TestFormatParagraphHeadingKeepsItalic(t *testing.T) {
	doc := docx.New(docx.DefaultFont)
	h := doc.AddHeading(2, 14)
	h.AppendRun("Sub ", false, false)
	h.AppendRun("part", false, true)
	got := NewOutlineRenderer().FormatParagraph(h)
	if len(got) != 1 || got[0] != "h2 Sub *part*" {
		t.Fatalf("unexpected heading line: %q", got)
	}
}

func TestOutlineNilDocument(t *testing.T) {
	if got := NewOutlineRenderer().Outline(nil); got != nil {
		t.Fatalf("expected nil outline, got %q", got)
	}
}

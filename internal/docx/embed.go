package docx

import (
	"embed"
	"encoding/xml"
	"math"
	"strings"
	"text/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var partTemplates = template.Must(template.New("docx").Funcs(template.FuncMap{
	"xml":        escapeXML,
	"halfPoints": halfPoints,
	"w3c":        w3cTime,
}).ParseFS(templateFiles, "templates/*.tmpl"))

// part maps a package path to the template that renders it.
type part struct {
	name     string
	template string
}

var packageParts = []part{
	{name: "[Content_Types].xml", template: "content_types.xml.tmpl"},
	{name: "_rels/.rels", template: "rels.xml.tmpl"},
	{name: "docProps/core.xml", template: "core.xml.tmpl"},
	{name: "docProps/app.xml", template: "app.xml.tmpl"},
	{name: "word/_rels/document.xml.rels", template: "document_rels.xml.tmpl"},
	{name: "word/styles.xml", template: "styles.xml.tmpl"},
	{name: "word/numbering.xml", template: "numbering.xml.tmpl"},
	{name: "word/document.xml", template: "document.xml.tmpl"},
}

func escapeXML(value string) (string, error) {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(value)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// halfPoints converts points to the half-point units used by w:sz.
func halfPoints(points float64) int {
	return int(math.Round(points * 2))
}

func w3cTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

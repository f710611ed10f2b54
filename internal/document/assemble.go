// Package document assembles highlighted resume text into a self-contained HTML document.
package document

import (
	"strings"
	"text/template"

	"github.com/matchpoint/matchpoint/internal/highlight"
)

// Legend is the fixed sentence explaining the highlight markers. It appears
// in every assembled document.
const Legend = "Highlighted passages are the phrases cited as evidence for this candidate's match score."

// TemplateData represents the data structure passed to the document template
type TemplateData struct {
	Title    string
	Subtitle string
	Legend   string
	Body     string
}

// docTemplate is embedded rather than loaded from disk so the assembled
// document never depends on files shipped alongside the binary. All styling
// is inline for the same reason: the artifact must stay viewable offline.
const docTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; line-height: 1.6; }
h1 { margin-bottom: 0.25rem; }
h2 { margin-top: 0; color: #555; font-weight: normal; font-size: 1.1rem; }
p.legend { font-style: italic; color: #666; border-bottom: 1px solid #ddd; padding-bottom: 0.75rem; }
mark { background: #fff3a3; padding: 0 2px; border-radius: 2px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Subtitle}}<h2>{{.Subtitle}}</h2>
{{end}}<p class="legend">{{.Legend}}</p>
<div class="resume">
{{.Body}}
</div>
</body>
</html>
`

var tmpl = template.Must(template.New("document").Parse(docTemplate))

// Assemble builds the complete viewer-ready document. The annotated body is
// inserted as-is (it is already escaped and marked); name and role are
// escaped here. Literal newlines in the body become explicit <br> breaks so
// the paragraph structure of the original resume survives rendering.
func Assemble(name, role, annotatedBody string) string {
	data := TemplateData{
		Title:    highlight.EscapeHTML(name),
		Subtitle: highlight.EscapeHTML(role),
		Legend:   Legend,
		Body:     strings.ReplaceAll(annotatedBody, "\n", "<br>\n"),
	}

	var result strings.Builder
	// The template is a compile-time constant; execution over plain strings
	// cannot fail.
	if err := tmpl.Execute(&result, data); err != nil {
		panic(err)
	}
	return result.String()
}

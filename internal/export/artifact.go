// Package export derives downloadable artifacts from highlighted resume documents.
package export

import (
	"regexp"

	"github.com/matchpoint/matchpoint/internal/document"
	"github.com/matchpoint/matchpoint/internal/highlight"
)

// MIME types and extensions for the supported artifact formats.
const (
	MIMETypeHTML = "text/html"
	MIMETypePDF  = "application/pdf"

	ExtensionHTML = ".html"
	ExtensionPDF  = ".pdf"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Artifact is a named, typed byte payload ready to hand to a download
// mechanism.
type Artifact struct {
	Filename string
	MIMEType string
	Data     []byte
}

// FilenameStem collapses every run of whitespace in a candidate's display
// name to a single underscore: "Sarah  Jenkins" becomes "Sarah_Jenkins".
func FilenameStem(name string) string {
	return whitespaceRun.ReplaceAllString(name, "_")
}

// Build runs the whole document pipeline for one candidate: escape the raw
// resume text, mark every evidence occurrence, assemble the standalone
// document, and wrap it as a UTF-8 HTML artifact.
func Build(name, role, content string, evidence []string) Artifact {
	body := highlight.Annotate(highlight.EscapeHTML(content), evidence)
	doc := document.Assemble(name, role, body)
	return Artifact{
		Filename: FilenameStem(name) + ExtensionHTML,
		MIMEType: MIMETypeHTML,
		Data:     []byte(doc),
	}
}

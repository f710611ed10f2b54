// Package export derives downloadable artifacts from highlighted resume documents.
package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenameStem_CollapsesWhitespaceRuns(t *testing.T) {
	assert.Equal(t, "Sarah_Jenkins", FilenameStem("Sarah  Jenkins"))
	assert.Equal(t, "Sarah_Jenkins", FilenameStem("Sarah Jenkins"))
	assert.Equal(t, "Sarah_J_Jenkins", FilenameStem("Sarah\tJ  Jenkins"))
}

func TestBuild_ArtifactShape(t *testing.T) {
	artifact := Build("Sarah  Jenkins", "Consultant", "Led cloud migration", []string{"cloud migration"})

	assert.Equal(t, "Sarah_Jenkins.html", artifact.Filename)
	assert.Equal(t, MIMETypeHTML, artifact.MIMEType)

	doc := string(artifact.Data)
	assert.Contains(t, doc, "<mark>cloud migration</mark>")
	assert.Contains(t, doc, "<h1>Sarah  Jenkins</h1>")
	assert.Contains(t, doc, "<h2>Consultant</h2>")
}

func TestBuild_EscapesRawContent(t *testing.T) {
	artifact := Build("X", "", "skills: C++ & <Go>", nil)
	doc := string(artifact.Data)
	assert.Contains(t, doc, "C++ &amp; &lt;Go&gt;")
	assert.False(t, strings.Contains(doc, "<Go>"))
}

func TestBuild_EmptyEvidenceProducesNoMarks(t *testing.T) {
	artifact := Build("X", "", "plain resume text", nil)
	assert.NotContains(t, string(artifact.Data), "<mark>")
}

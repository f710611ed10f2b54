// Package document assembles highlighted resume text into a self-contained HTML document.
package document

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchpoint/matchpoint/internal/highlight"
)

func TestAssemble_TitleAndSubtitle(t *testing.T) {
	doc := Assemble("Sarah Jenkins", "Senior Consultant", "body text")
	assert.Contains(t, doc, "<h1>Sarah Jenkins</h1>")
	assert.Contains(t, doc, "<h2>Senior Consultant</h2>")
	assert.Contains(t, doc, "<title>Sarah Jenkins</title>")
}

func TestAssemble_NoRoleOmitsSubtitle(t *testing.T) {
	doc := Assemble("Sarah Jenkins", "", "body text")
	assert.NotContains(t, doc, "<h2>")
}

func TestAssemble_EscapesNameAndRole(t *testing.T) {
	doc := Assemble("Tom & Jerry", "<lead>", "body")
	assert.Contains(t, doc, "<h1>Tom &amp; Jerry</h1>")
	assert.Contains(t, doc, "<h2>&lt;lead&gt;</h2>")
}

func TestAssemble_LegendAlwaysPresent(t *testing.T) {
	doc := Assemble("A", "", "")
	assert.Contains(t, doc, Legend)
}

func TestAssemble_NewlinesBecomeLineBreaks(t *testing.T) {
	doc := Assemble("A", "", "line one\nline two")
	assert.Contains(t, doc, "line one<br>\nline two")
}

func TestAssemble_SelfContained(t *testing.T) {
	doc := Assemble("Sarah Jenkins", "Consultant", "some body")
	assert.NotContains(t, doc, "src=")
	assert.NotContains(t, doc, "href=")
	assert.NotContains(t, doc, "@import")
	assert.Contains(t, doc, "<style>")
}

func TestAssemble_MarkersSurviveIntoDocument(t *testing.T) {
	body := highlight.Annotate(highlight.EscapeHTML("Led cloud migration"), []string{"cloud migration"})
	doc := Assemble("Sarah Jenkins", "", body)

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	require.NoError(t, err)

	marks := parsed.Find("mark")
	require.Equal(t, 1, marks.Length())
	assert.Equal(t, "cloud migration", marks.First().Text())
	assert.Equal(t, "Sarah Jenkins", parsed.Find("h1").Text())
}

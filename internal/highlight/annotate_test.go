// Package highlight provides functionality to mark evidence phrases inside resume text.
package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotate_SingleOccurrence(t *testing.T) {
	body := "Led cloud migration for a bank"
	result := Annotate(body, []string{"cloud migration"})
	assert.Equal(t, "Led <mark>cloud migration</mark> for a bank", result)
}

func TestAnnotate_CaseInsensitivePreservesCasing(t *testing.T) {
	result := Annotate("AWS Certified", []string{"aws certified"})
	assert.Equal(t, "<mark>AWS Certified</mark>", result)
}

func TestAnnotate_MultipleOccurrences(t *testing.T) {
	result := Annotate("Python here, python there", []string{"python"})
	assert.Equal(t, "<mark>Python</mark> here, <mark>python</mark> there", result)
}

func TestAnnotate_RegexSpecialCharactersMatchedLiterally(t *testing.T) {
	body := "Scored 99.5% on assessment"
	result := Annotate(body, []string{"99.5%"})
	// "99.5%" must not behave as "any char, any count"
	assert.Equal(t, "Scored <mark>99.5%</mark> on assessment", result)
	assert.Equal(t, 1, strings.Count(result, "<mark>"))
}

func TestAnnotate_PhraseWithEscapableCharacters(t *testing.T) {
	// The body arrives already escaped, so the phrase must be escaped
	// before matching.
	body := EscapeHTML("Worked on M&A tooling")
	result := Annotate(body, []string{"M&A"})
	assert.Equal(t, "Worked on <mark>M&amp;A</mark> tooling", result)
}

func TestAnnotate_EmptyPhraseList(t *testing.T) {
	body := "Nothing to see here"
	assert.Equal(t, body, Annotate(body, nil))
	assert.Equal(t, body, Annotate(body, []string{"", "  "}))
}

func TestAnnotate_PhraseNotPresent(t *testing.T) {
	body := "Backend developer"
	assert.Equal(t, body, Annotate(body, []string{"frontend"}))
}

func TestAnnotate_OverlappingPhrasesRescanBody(t *testing.T) {
	// Each phrase re-scans the already-marked body. Once "cloud" is wrapped,
	// the literal "cloud migration" is broken apart by the closing tag and no
	// longer matches. The reverse order matches inside the existing marker
	// and nests. Both shapes are the shipped behavior, asserted exactly.
	result := Annotate("cloud migration project", []string{"cloud", "cloud migration"})
	assert.Equal(t, "<mark>cloud</mark> migration project", result)

	result = Annotate("cloud migration project", []string{"cloud migration", "cloud"})
	assert.Equal(t, "<mark><mark>cloud</mark> migration</mark> project", result)
}

func TestAnnotate_StrippingMarksRestoresBody(t *testing.T) {
	body := EscapeHTML("Led cloud migration & AWS rollout for <Bank>")
	result := Annotate(body, []string{"cloud", "aws", "bank"})

	stripped := strings.NewReplacer("<mark>", "", "</mark>", "").Replace(result)
	assert.Equal(t, body, stripped)
}

// Package highlight provides functionality to mark evidence phrases inside resume text.
package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML_EmptyString(t *testing.T) {
	result := EscapeHTML("")
	assert.Equal(t, "", result)
}

func TestEscapeHTML_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	result := EscapeHTML(text)
	assert.Equal(t, text, result)
}

func TestEscapeHTML_Ampersand(t *testing.T) {
	result := EscapeHTML("R&D team")
	assert.Equal(t, "R&amp;D team", result)
}

func TestEscapeHTML_AngleBrackets(t *testing.T) {
	result := EscapeHTML("<script>alert(1)</script>")
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", result)
}

func TestEscapeHTML_AmpersandNotReEscaped(t *testing.T) {
	// The escaping of < and > must not have its own & re-escaped.
	result := EscapeHTML("a < b & b > c")
	assert.Equal(t, "a &lt; b &amp; b &gt; c", result)
}

func TestEscapeHTML_NotIdempotent(t *testing.T) {
	once := EscapeHTML("&")
	twice := EscapeHTML(once)
	assert.Equal(t, "&amp;", once)
	assert.Equal(t, "&amp;amp;", twice)
}

func TestEscapeHTML_OutputHasNoRawAngleBrackets(t *testing.T) {
	result := EscapeHTML("x < y > z & <b>bold</b>")
	assert.NotContains(t, result, "<")
	assert.NotContains(t, result, ">")
}

func TestEscapeHTML_RoundTrip(t *testing.T) {
	original := "C++ & Java <generics>, 10 > 5"
	escaped := EscapeHTML(original)

	restored := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&").Replace(escaped)
	assert.Equal(t, original, restored)
}

func TestEscapeHTML_UnicodeCharacters(t *testing.T) {
	text := "résumé with unicode: α β γ"
	result := EscapeHTML(text)
	// Unicode should pass through unchanged
	assert.Equal(t, text, result)
}

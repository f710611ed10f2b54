// Package highlight provides functionality to mark evidence phrases inside resume text.
package highlight

import "regexp"

// Annotate wraps every occurrence of each normalized phrase in the escaped
// body with <mark> tags. Matching is case-insensitive and literal: the phrase
// is escaped the same way the body was, then regex metacharacters are
// neutralized so "99.5%" matches only "99.5%". The matched text keeps its
// original casing.
//
// Phrases are applied in sequence, each one re-scanning the full body
// produced by the previous phrase. A phrase that overlaps an earlier match
// can therefore land inside an existing marker and produce nested marks;
// that mirrors the shipped frontend behavior and is kept as-is.
func Annotate(body string, phrases []string) string {
	for _, phrase := range NormalizePhrases(phrases) {
		escaped := EscapeHTML(phrase)
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(escaped))
		body = pattern.ReplaceAllStringFunc(body, func(match string) string {
			return "<mark>" + match + "</mark>"
		})
	}
	return body
}

// Package ingestion loads raw resume files into the candidate store.
package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText parses an HTML resume and returns its readable body text.
// Navigation, styling and script elements are dropped; remaining text keeps
// one line per original line, trimmed, with blank lines removed.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return cleanWhitespace(doc.Text()), nil
	}
	return cleanWhitespace(body.Text()), nil
}

// cleanWhitespace normalizes whitespace in text.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

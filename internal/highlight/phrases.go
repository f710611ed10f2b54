// Package highlight provides functionality to mark evidence phrases inside resume text.
package highlight

import "strings"

// NormalizePhrases trims surrounding whitespace from each evidence phrase and
// drops phrases that become empty. The relative order of surviving phrases is
// preserved; phrase order determines annotation order.
func NormalizePhrases(phrases []string) []string {
	normalized := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		trimmed := strings.TrimSpace(phrase)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matchpoint/matchpoint/internal/export"
	"github.com/matchpoint/matchpoint/internal/matchsvc"
)

func TestPrintSearchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSearchResults(&matchsvc.SearchResponse{Query: "q"})
	assert.Contains(t, buf.String(), "No candidates matched.")
}

func TestPrintSearchResults_ListsCandidates(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSearchResults(&matchsvc.SearchResponse{
		Query: "cloud migration lead",
		Results: []matchsvc.Candidate{
			{Name: "Sarah Jenkins", Role: "Consultant", Score: 91, Rationale: "strong fit",
				Evidence: []string{"cloud migration"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Sarah Jenkins")
	assert.Contains(t, out, "Score: 91 / 100")
	assert.Contains(t, out, "cloud migration")
}

func TestPrintSearchResults_TruncatesLongLists(t *testing.T) {
	results := make([]matchsvc.Candidate, 8)
	for i := range results {
		results[i] = matchsvc.Candidate{Name: "Candidate", Score: 50}
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSearchResults(&matchsvc.SearchResponse{Query: "q", Results: results})
	assert.Contains(t, buf.String(), "and 3 more candidates")
}

func TestPrintExportStatus(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExportStatus("Sarah Jenkins", export.StatusFetching)
	assert.Equal(t, "  [fetching] Sarah Jenkins\n", buf.String())
}

func TestPrintArtifact(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintArtifact(export.Artifact{
		Filename: "Sarah_Jenkins.html",
		MIMEType: "text/html",
		Data:     []byte("<html>"),
	})
	assert.Contains(t, buf.String(), "Sarah_Jenkins.html")
	assert.Contains(t, buf.String(), "text/html")
}

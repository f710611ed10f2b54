// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/matchpoint/matchpoint/internal/export"
	"github.com/matchpoint/matchpoint/internal/matchsvc"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSearchResults outputs the ranked candidates returned by the matcher.
func (p *Printer) PrintSearchResults(resp *matchsvc.SearchResponse) {
	if resp == nil || len(resp.Results) == 0 {
		p.printBox("SEARCH RESULTS", "No candidates matched.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query: %.60s\n", resp.Query))
	sb.WriteString(fmt.Sprintf("Candidates: %d\n", len(resp.Results)))

	count := min(len(resp.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := resp.Results[i]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, c.Name))
		if c.Role != "" {
			sb.WriteString(fmt.Sprintf(" — %s", c.Role))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %d / 100\n", c.Score))
		if c.Rationale != "" {
			sb.WriteString(fmt.Sprintf("    %.48s\n", c.Rationale))
		}
		for _, phrase := range c.Evidence {
			sb.WriteString(fmt.Sprintf("    • %.46s\n", phrase))
		}
	}

	if len(resp.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(resp.Results)-maxItemsToShow))
	}

	p.printBox("SEARCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExportStatus outputs one export state transition.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExportStatus(name string, status export.Status) {
	fmt.Fprintf(p.out, "  [%s] %s\n", status, name)
}

// PrintArtifact outputs a summary of a finished export.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintArtifact(artifact export.Artifact) {
	fmt.Fprintf(p.out, "Saved %s (%s, %d bytes)\n", artifact.Filename, artifact.MIMEType, len(artifact.Data))
}

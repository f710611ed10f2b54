// Package ingestion loads raw resume files into the candidate store.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/matchpoint/matchpoint/internal/store"
)

// supported resume file extensions
var supportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// IngestDir scans dataDir for resume files and upserts one candidate per
// file. HTML files are reduced to their main text first. Returns the number
// of files ingested.
func IngestDir(ctx context.Context, dataDir string, st *store.Store) (int, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return 0, fmt.Errorf("reading resume directory %s: %w", dataDir, err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !supportedExtensions[ext] {
			continue
		}

		candidate, err := loadFile(filepath.Join(dataDir, entry.Name()))
		if err != nil {
			log.Printf("Skipping %s: %v", entry.Name(), err)
			continue
		}

		if err := st.UpsertCandidate(ctx, *candidate); err != nil {
			return count, err
		}
		count++
	}

	log.Printf("Ingested %d resume file(s) from %s", count, dataDir)
	return count, nil
}

// loadFile reads one resume file and derives its candidate record. The
// display name comes from the file name ("Sarah_Jenkins.txt" → "Sarah
// Jenkins"); a leading "Role:" line, when present, sets the role and is
// removed from the content.
func loadFile(path string) (*store.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	content := string(data)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		content, err = ExtractText(content)
		if err != nil {
			return nil, fmt.Errorf("extracting text: %w", err)
		}
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("file is empty")
	}

	role, content := splitRoleHeader(content)

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.ReplaceAll(name, "_", " ")

	return &store.Candidate{
		Filename: base,
		Name:     name,
		Role:     role,
		Content:  content,
	}, nil
}

// splitRoleHeader peels an optional "Role: ..." first line off the content.
func splitRoleHeader(content string) (role, rest string) {
	line, remainder, found := strings.Cut(content, "\n")
	if after, ok := strings.CutPrefix(line, "Role:"); ok {
		role = strings.TrimSpace(after)
		if !found {
			return role, ""
		}
		return role, strings.TrimSpace(remainder)
	}
	return "", content
}

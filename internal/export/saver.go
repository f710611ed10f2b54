// Package export derives downloadable artifacts from highlighted resume documents.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Saver hands a finished artifact to the host environment's save mechanism.
// It is an interface so the pipeline stays testable without touching a real
// filesystem or browser download surface.
type Saver interface {
	Save(ctx context.Context, artifact Artifact) error
}

// DirSaver writes artifacts into a downloads directory. The write goes
// through a temporary file that is removed on every exit path and renamed
// into place only on success, so a failed save never leaves a partial
// artifact behind.
type DirSaver struct {
	Dir string
}

// Save writes the artifact to the saver's directory, creating it if needed.
func (s *DirSaver) Save(_ context.Context, artifact Artifact) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.Dir, err)
	}

	tmp, err := os.CreateTemp(s.Dir, ".export-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // no-op once renamed

	if _, err := tmp.Write(artifact.Data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close artifact file: %w", err)
	}

	target := filepath.Join(s.Dir, artifact.Filename)
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to move artifact into place: %w", err)
	}
	return nil
}

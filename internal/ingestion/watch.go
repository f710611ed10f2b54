// Package ingestion loads raw resume files into the candidate store.
package ingestion

import (
	"context"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matchpoint/matchpoint/internal/store"
)

// debounceWindow batches bursts of filesystem events (editors write several
// times per save) into a single re-ingest.
const debounceWindow = 500 * time.Millisecond

// Watch re-ingests the resume directory whenever files in it change. It
// blocks until ctx is cancelled.
func Watch(ctx context.Context, dataDir string, st *store.Store) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dataDir); err != nil {
		return err
	}
	log.Printf("Watching %s for resume changes", dataDir)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-timerC:
			timer = nil
			timerC = nil
			if _, err := IngestDir(ctx, dataDir, st); err != nil {
				log.Printf("Re-ingest failed: %v", err)
			}
		}
	}
}

package check

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andyballingall/cstylecheck/internal/fs"
)

const debounceDuration = 100 * time.Millisecond

// Watcher monitors a fixed set of files and reports when they are written.
//
// Directories are watched rather than the files themselves, so editors that save
// by renaming a temporary file over the original are still noticed.
type Watcher struct {
	logger *slog.Logger
	Ready  chan struct{}

	// files maps the canonical path of each watched file to the path the caller used.
	files map[string]string
	dirs  []string

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a Watcher for paths. Paths that cannot be resolved are
// returned as an error.
func NewWatcher(paths []string, logger *slog.Logger) (*Watcher, error) {
	w := &Watcher{
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		files:      make(map[string]string, len(paths)),
		newWatcher: fsnotify.NewWatcher,
	}

	for _, p := range paths {
		canonical, err := fs.CanonicalPath(p)
		if err != nil {
			return nil, err
		}
		w.files[canonical] = p
		if dir := filepath.Dir(canonical); !slices.Contains(w.dirs, dir) {
			w.dirs = append(w.dirs, dir)
		}
	}

	return w, nil
}

// Watch blocks until ctx is cancelled, calling callback with the caller's path of
// each watched file that is created or written. Bursts of events are coalesced, and
// callback is never called concurrently with itself. Once Watch returns, callback is
// no longer running and is not called again.
func (w *Watcher) Watch(ctx context.Context, callback func(path string)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	w.logger.Info("Watching for changes", "files", len(w.files))
	if w.Ready != nil {
		close(w.Ready)
	}

	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending []string

		// cbMu keeps overlapping timer callbacks in sequence. stopped is set under
		// cbMu once Watch is returning; no callback starts after that.
		cbMu    sync.Mutex
		stopped bool
	)

	flush := func() {
		cbMu.Lock()
		defer cbMu.Unlock()
		if stopped {
			return
		}

		mu.Lock()
		batch := pending
		pending = nil
		mu.Unlock()

		for _, p := range batch {
			callback(p)
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()

		// Waits for a flush already in progress.
		cbMu.Lock()
		stopped = true
		cbMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			p := w.handleEvent(event)
			if p == "" {
				continue
			}
			mu.Lock()
			if !slices.Contains(pending, p) {
				pending = append(pending, p)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDuration, flush)
			mu.Unlock()
		}
	}
}

// handleEvent maps an fsnotify event to the caller's path of a watched file, or
// "" if the event is not relevant.
func (w *Watcher) handleEvent(event fsnotify.Event) string {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return ""
	}

	canonical, err := fs.CanonicalPath(event.Name)
	if err != nil {
		w.logger.Debug("ignoring event", "path", event.Name, "error", err)
		return ""
	}

	return w.files[canonical]
}

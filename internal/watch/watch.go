package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/mmr-tortoise/fry-tempura/internal/logging"
	"github.com/mmr-tortoise/fry-tempura/internal/transform"
)

// DefaultDebounce is how long a path must stay quiet before it is rebuilt.
// Editors often write a file several times per save.
const DefaultDebounce = 300 * time.Millisecond

// BuildFunc rebuilds a single source file.
type BuildFunc func(path string) error

// Watcher rebuilds changed sources under a root directory.
type Watcher struct {
	root     string
	build    BuildFunc
	debounce time.Duration
	pending  map[string]time.Time
	logger   zerolog.Logger
}

// New returns a Watcher for root that calls build for every settled change.
func New(root string, build BuildFunc) *Watcher {
	return &Watcher{
		root:     root,
		build:    build,
		debounce: DefaultDebounce,
		pending:  make(map[string]time.Time),
		logger:   logging.GetLogger("watch"),
	}
}

// SetDebounce changes the quiet period. Non-positive values disable
// debouncing.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = max(d, 0)
}

// Run watches until ctx is done. Build failures are logged and do not stop
// the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := addTree(fw, w.root); err != nil {
		return err
	}
	w.logger.Info().Str("root", w.root).Msg("watching sources")

	ticker := time.NewTicker(w.tick())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("context cancelled")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fw, event, time.Now())

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("watcher error")

		case now := <-ticker.C:
			for _, path := range w.settled(now) {
				w.rebuild(path)
			}
		}
	}
}

func (w *Watcher) tick() time.Duration {
	return max(w.debounce/3, 10*time.Millisecond)
}

// handleEvent records script changes and starts watching new directories.
func (w *Watcher) handleEvent(fw *fsnotify.Watcher, event fsnotify.Event, now time.Time) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addTree(fw, event.Name); err != nil {
				w.logger.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
			}
			return
		}
	}

	if !transform.IsScriptSource(event.Name) {
		return
	}
	w.logger.Trace().Str("path", event.Name).Str("op", event.Op.String()).Msg("change")
	w.pending[event.Name] = now
}

// settled removes and returns the pending paths that have been quiet for
// the debounce period, sorted.
func (w *Watcher) settled(now time.Time) []string {
	var due []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			due = append(due, path)
			delete(w.pending, path)
		}
	}
	slices.Sort(due)
	return due
}

func (w *Watcher) rebuild(path string) {
	start := time.Now()
	if err := w.build(path); err != nil {
		w.logger.Error().Err(err).Str("source", path).Msg("failed to build script")
		return
	}
	logging.LogDuration(w.logger, start, "rebuild "+path)
}

// addTree watches dir and every directory below it. fsnotify watches are
// not recursive.
func addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

package sitemap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cinematicwebworks/seokit/internal/scanner"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for further changes before
// rebuilding.
const DefaultDebounce = 500 * time.Millisecond

// RebuildFunc regenerates the sitemap.
type RebuildFunc func(ctx context.Context) error

// Watcher rebuilds the sitemap when content files under root change.
type Watcher struct {
	root       string
	exclusions scanner.ExclusionRules
	rebuild    RebuildFunc
	debounce   time.Duration
	logger     *slog.Logger
	fsw        *fsnotify.Watcher
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a rebuild.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the logger.
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher creates a watcher over root. Excluded directories are not
// watched and changes to excluded paths are ignored.
func NewWatcher(root string, exclusions scanner.ExclusionRules, rebuild RebuildFunc, opts ...WatcherOption) (*Watcher, error) {
	if rebuild == nil {
		return nil, errors.New("rebuild function is required")
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &scanner.InvalidRootError{Root: root, Err: err}
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, &scanner.InvalidRootError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &scanner.InvalidRootError{Root: root}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		root:       absRoot,
		exclusions: exclusions,
		rebuild:    rebuild,
		debounce:   DefaultDebounce,
		logger:     slog.Default(),
		fsw:        fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until ctx is cancelled. Rebuild errors are logged and do not
// stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	if err := w.addRecursive(w.root); err != nil {
		return err
	}
	w.logger.Info("watching for changes", "root", w.root, "debounce", w.debounce)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.handle(event) {
				continue
			}
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-timer.C:
			pending = false
			if err := w.rebuild(ctx); err != nil {
				w.logger.Error("sitemap rebuild failed", "error", err)
			}
		}
	}
}

// handle reacts to one event and reports whether it should trigger a rebuild.
func (w *Watcher) handle(event fsnotify.Event) bool {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if w.exclusions.Excludes(rel) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			return true
		}
	}

	if !strings.HasSuffix(event.Name, scanner.DefaultExtension) {
		return false
	}
	w.logger.Debug("content changed", "path", rel, "op", event.Op.String())
	return true
}

// addRecursive watches dir and every non-excluded directory below it.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return &scanner.ScanError{Path: path, Err: err}
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root {
			rel, relErr := filepath.Rel(w.root, path)
			if relErr == nil && w.exclusions.Excludes(filepath.ToSlash(rel)) {
				return filepath.SkipDir
			}
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

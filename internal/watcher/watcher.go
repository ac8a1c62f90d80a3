// Package watcher regenerates output when a glossary source or one of the
// images next to it changes on disk.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/glossgen/internal/checksum"
)

// DefaultDebounce is how long the watcher waits for events to settle before
// rebuilding.
const DefaultDebounce = 200 * time.Millisecond

// RebuildFunc regenerates every output. Errors are logged and watching
// continues.
type RebuildFunc func(ctx context.Context) error

var imageExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".svg": {}, ".webp": {},
}

// Watcher observes the directory holding a glossary source.
type Watcher struct {
	source   string
	dir      string
	debounce time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	seen map[string]string // abs path → checksum at last rebuild
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// New returns a watcher for the glossary source at path.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		source:   abs,
		dir:      filepath.Dir(abs),
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
		seen:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch is a convenience wrapper around New and Run.
func Watch(ctx context.Context, path string, logger *slog.Logger, rebuild RebuildFunc) error {
	w, err := New(path, WithLogger(logger))
	if err != nil {
		return err
	}
	return w.Run(ctx, rebuild)
}

// Ignore records data as the current content of path so that the write
// producing it does not trigger a rebuild.
func (w *Watcher) Ignore(path string, data []byte) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.seen[abs] = checksum.Sum(data)
	w.mu.Unlock()
}

// Run watches until ctx is cancelled. Bursts of events are coalesced into a
// single rebuild after the debounce interval.
func (w *Watcher) Run(ctx context.Context, rebuild RebuildFunc) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}
	w.changed(w.source)

	w.logger.Info("watcher: started", slog.String("source", w.source))

	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		} else {
			timer.Reset(w.debounce)
		}
	}
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.logger.Info("watcher: stopped")
			return nil

		case <-fire:
			// Compare contents only once events settle so partial writes
			// are never recorded.
			dirty := false
			for p := range pending {
				if w.changed(p) {
					dirty = true
				}
			}
			clear(pending)
			if !dirty {
				w.logger.Debug("watcher: content unchanged")
				continue
			}
			w.logger.Info("watcher: rebuilding")
			if err := rebuild(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				w.logger.Error("watcher: rebuild failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev.Name) {
				continue
			}
			w.logger.Debug("watcher: change", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			pending[ev.Name] = struct{}{}
			schedule()

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// relevant reports whether a change to path can affect the output.
func (w *Watcher) relevant(path string) bool {
	if path == w.source {
		return true
	}
	if filepath.Dir(path) != w.dir || strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	_, ok := imageExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// changed reads path and reports whether its content differs from what was
// seen last, recording the new checksum. A vanished file counts as changed
// once.
func (w *Watcher) changed(path string) bool {
	sum, err := checksum.File(path)
	if errors.Is(err, fs.ErrNotExist) {
		w.mu.Lock()
		defer w.mu.Unlock()
		_, known := w.seen[path]
		delete(w.seen, path)
		return known
	}
	if err != nil {
		return true
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seen[path] == sum {
		return false
	}
	w.seen[path] = sum
	return true
}

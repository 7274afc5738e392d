package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/tmoura/strata/pkg/config"
	"github.com/tmoura/strata/pkg/store"
)

// defaultPattern filters watch events down to note working copies.
const defaultPattern = "*.md"

// Watcher is the long-lived change-detection loop. It observes filesystem
// notifications on the working-copy directory, debounces bursts of events
// and promotes snapshots for every note after a quiet period.
//
// The loop is single-threaded: it blocks on "next notification or
// cooldown timeout" and never spawns per-note workers.
type Watcher struct {
	paths    *store.Paths
	pattern  string
	cooldown time.Duration
	logger   *slog.Logger
	now      func() time.Time
	sync     func(ctx context.Context) error
}

// WatcherOption defines a functional option for configuring the Watcher.
type WatcherOption func(*Watcher)

// WithCooldown overrides the debounce window.
func WithCooldown(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.cooldown = d
	}
}

// WithLogger sets the logger for the watcher.
func WithLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithPattern overrides the event filename filter.
func WithPattern(pattern string) WatcherOption {
	return func(w *Watcher) {
		w.pattern = pattern
	}
}

// WithClock injects a time source, useful for deterministic tests.
func WithClock(now func() time.Time) WatcherOption {
	return func(w *Watcher) {
		w.now = now
	}
}

// WithSyncFunc replaces the synchronization pass. Tests use this to count
// passes without touching disk.
func WithSyncFunc(sync func(ctx context.Context) error) WatcherOption {
	return func(w *Watcher) {
		w.sync = sync
	}
}

// NewWatcher builds a watcher over the given data layout.
func NewWatcher(paths *store.Paths, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		paths:    paths,
		pattern:  defaultPattern,
		cooldown: config.DefaultCooldown,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.sync == nil {
		w.sync = w.syncPass
	}
	return w
}

// Run registers this process in the pid marker, subscribes to filesystem
// notifications and blocks in the event loop until the context is
// cancelled or the event source closes.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.paths.EnsureDirs(); err != nil {
		return err
	}

	guard := NewGuard(w.paths.DaemonPID)
	if err := guard.WritePID(); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.paths.Files); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.paths.Files, err)
	}

	w.logger.Info("daemon started", "root", w.paths.Root, "cooldown", w.cooldown)

	// Catch up on edits made while no watcher was running. Supervised so
	// a failure is logged without taking the loop down.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		if err := w.sync(ctx); err != nil {
			w.logger.Error("startup sync error", "error", err)
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		w.logger.Error("startup sync panic", "error", err)
	}))

	return w.loop(ctx, fsw.Events, fsw.Errors)
}

// loop is the debounce core: any qualifying event marks the state dirty
// and records its time; a synchronization pass runs only once a full
// cooldown window has elapsed with no further events. Errors from a pass
// are logged and never terminate the loop.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	var dirty bool
	var lastEvent time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if w.matches(event.Name) {
				w.logger.Debug("change observed", "path", event.Name, "op", event.Op.String())
				dirty = true
				lastEvent = w.now()
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)

		case <-time.After(w.cooldown):
			if dirty && w.now().Sub(lastEvent) >= w.cooldown {
				if err := w.sync(ctx); err != nil {
					w.logger.Error("sync error", "error", err)
				}
				dirty = false
			}
		}
	}
}

// matches filters events down to files carrying the note extension.
func (w *Watcher) matches(name string) bool {
	base := strings.ToLower(filepath.Base(name))
	ok, err := doublestar.Match(w.pattern, base)
	return err == nil && ok
}

// syncPass loads a fresh store, promotes every changed note and persists
// the index. The store's lifetime brackets exactly one pass; nothing is
// retained across passes.
func (w *Watcher) syncPass(ctx context.Context) error {
	s, err := store.Open(w.paths, store.WithLogger(w.logger))
	if err != nil {
		return err
	}

	updated, err := s.SnapshotAll()
	if err != nil {
		return err
	}
	if len(updated) > 0 {
		w.logger.Info("snapshots promoted", "count", len(updated), "slugs", strings.Join(updated, ", "))
	}

	return s.Save()
}

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a seed file into a store whenever the file is written,
// reacting at most once per second so editors that write in bursts trigger a
// single reload.
type Watcher struct {
	path   string
	store  EventStore
	logger *slog.Logger

	watcher *fsnotify.Watcher

	mu       sync.Mutex
	lastRead time.Time
}

// NewWatcher creates a watcher for the given seed file. A nil logger falls
// back to slog's default.
func NewWatcher(path string, store EventStore, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{path: path, store: store, logger: logger}
}

// Start begins watching until Close is called.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	if err := fw.Add(w.path); err != nil {
		fw.Close()
		return fmt.Errorf("watcher.Add: %w", err)
	}
	w.watcher = fw
	go w.run()
	return nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("seed file watch error", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if time.Since(w.lastRead) < time.Second { // react at most once per second
		return
	}
	w.lastRead = time.Now()

	events, err := LoadEvents(w.path)
	if err != nil {
		w.logger.Error("failed to reload seed file", "path", w.path, "err", err)
		return
	}
	if err := w.store.Replace(context.Background(), events); err != nil {
		w.logger.Error("failed to replace events from seed file", "path", w.path, "err", err)
		return
	}
	w.logger.Info("seed file reloaded", "path", w.path, "events", len(events))
}

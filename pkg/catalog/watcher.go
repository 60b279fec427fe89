package catalog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a catalog file when it changes on disk.
//
// Editors typically produce bursts of write/rename events per save, so
// reloads are debounced. On a successful reload the OnReload callback
// receives a fresh QueryService; load failures are logged and the previous
// catalog stays in effect.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	// OnReload is invoked with the newly loaded QueryService.
	// Called from the watcher goroutine.
	OnReload func(*QueryService)

	timerMu sync.Mutex
	timer   *time.Timer

	mu       sync.Mutex
	stopChan chan struct{}
	stopped  bool
}

// NewWatcher creates a watcher for the catalog file at path.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger, onReload func(*QueryService)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 200 * time.Millisecond
	}
	return &Watcher{
		path:     path,
		watcher:  fw,
		logger:   logger,
		debounce: debounce,
		OnReload: onReload,
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins watching. Runs the event loop in a background goroutine.
func (w *Watcher) Start() error {
	// Watch the directory, not the file: editors that write via
	// rename-and-replace would otherwise drop the watch.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	w.logger.Info("catalog watcher started", "path", w.path)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times (idempotent).
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()

	err := w.watcher.Close()
	w.logger.Info("catalog watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("catalog watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("catalog file event", "op", event.Op.String(), "file", event.Name)

	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	qs, err := LoadAndQuery(w.path)
	if err != nil {
		w.logger.Warn("catalog reload failed, keeping previous catalog",
			"path", w.path,
			"error", err)
		return
	}

	w.logger.Info("catalog reloaded",
		"path", w.path,
		"tokens", len(qs.Catalog.Tokens),
		"components", len(qs.Catalog.Components))

	if w.OnReload != nil {
		w.OnReload(qs)
	}
}

package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IntakeEvent reports a candidate upload dropped into the intake directory.
type IntakeEvent struct {
	Path string
}

// IntakeWatcher watches an intake directory for new PDF and ZIP files using
// fsnotify. Writes are debounced per file so a document copied in chunks
// fires a single event once it settles.
type IntakeWatcher struct {
	watcher    *fsnotify.Watcher
	settle     time.Duration
	extensions []string
	onFile     func(IntakeEvent)

	mu      sync.Mutex
	pending map[string]*SettleTimer
}

// NewIntakeWatcher creates a watcher for the given extensions (lowercase,
// with leading dot).
func NewIntakeWatcher(settle time.Duration, extensions []string, onFile func(IntakeEvent)) (*IntakeWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if settle == 0 {
		settle = 500 * time.Millisecond
	}
	if len(extensions) == 0 {
		extensions = []string{".pdf", ".zip"}
	}
	return &IntakeWatcher{
		watcher:    w,
		settle:     settle,
		extensions: extensions,
		onFile:     onFile,
		pending:    make(map[string]*SettleTimer),
	}, nil
}

// Watch adds the intake directory and its subdirectories.
func (w *IntakeWatcher) Watch(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *IntakeWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	defer w.stopPending()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			// New subdirectories join the watch set.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.Watch(event.Name)
					continue
				}
			}

			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !w.accepts(event.Name) {
				continue
			}
			w.settleFile(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func (w *IntakeWatcher) accepts(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range w.extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (w *IntakeWatcher) settleFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Touch()
		return
	}

	timer := NewSettleTimer(w.settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		if w.onFile != nil {
			w.onFile(IntakeEvent{Path: path})
		}
	})
	w.pending[path] = timer
	timer.Touch()
}

func (w *IntakeWatcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, timer := range w.pending {
		timer.Cancel()
	}
}

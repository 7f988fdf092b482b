package tuning

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce suppresses the burst of writes most editors fire for a
// single save.
const DefaultDebounce = 100 * time.Millisecond

// relevantOps are the operations that can change a spec file's contents.
const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher reports edits to spec files so debug builds can reload tuning
// without restarting.
type Watcher struct {
	Events chan string
	Errors chan error

	fsw      *fsnotify.Watcher
	debounce time.Duration
	lastSeen map[string]time.Time
	closeCh  chan struct{}
	once     sync.Once
}

// NewWatcher watches dirs for spec file edits, emitting at most one event per
// path per debounce window. A debounce <= 0 means DefaultDebounce.
func NewWatcher(debounce time.Duration, dirs ...string) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tuning: start watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("tuning: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		fsw:      fsw,
		debounce: debounce,
		lastSeen: make(map[string]time.Time),
		closeCh:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			if w.shouldEmit(event.Name, time.Now()) {
				w.Events <- event.Name
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.closeCh:
			return
		}
	}
}

// shouldEmit decides whether an event for name at time now passes the spec
// filter and the per-path debounce. Only the run goroutine touches lastSeen.
func (w *Watcher) shouldEmit(name string, now time.Time) bool {
	if !isSpecFile(name) {
		return false
	}
	if last, ok := w.lastSeen[name]; ok && now.Sub(last) < w.debounce {
		return false
	}
	w.lastSeen[name] = now
	return true
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Package watcher provides debounced change notifications for a single
// document file, used by the viewport to auto-reload externally edited
// scenes.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DocumentWatcher watches one file and invokes a callback after changes
// settle for the debounce interval. Editors that write via rename/replace
// emit bursts of events; debouncing collapses them into one reload.
type DocumentWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	onChange func()
	debounce time.Duration
	timer    *time.Timer
	done     chan struct{}
}

// New creates a watcher for the given file. onChange runs on the watcher's
// goroutine after each debounced change burst.
func New(path string, debounce time.Duration, onChange func()) (*DocumentWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory rather than the file itself so the watch survives
	// atomic saves that replace the inode.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	dw := &DocumentWatcher{
		watcher:  fsw,
		path:     absPath,
		onChange: onChange,
		debounce: debounce,
		done:     make(chan struct{}),
	}
	go dw.run()
	return dw, nil
}

func (dw *DocumentWatcher) run() {
	for {
		select {
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if event.Name != dw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				dw.scheduleCallback()
			}

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Watcher error: %v\n", err)

		case <-dw.done:
			return
		}
	}
}

// scheduleCallback restarts the debounce timer
func (dw *DocumentWatcher) scheduleCallback() {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.timer = time.AfterFunc(dw.debounce, dw.onChange)
}

// Close stops watching and cancels any pending callback
func (dw *DocumentWatcher) Close() error {
	dw.mu.Lock()
	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.mu.Unlock()

	close(dw.done)
	return dw.watcher.Close()
}

// ABOUTME: Polling file watcher used to hot-reload storyboard files
// ABOUTME: Watches a fixed path list or a glob, so added and removed files count as changes

package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Watcher detects changes to a set of files by polling their mtimes.
type Watcher struct {
	list     func() []string
	onChange func()
	interval time.Duration
	mtimes   map[string]time.Time
	stopCh   chan struct{}
	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
}

// NewWatcher watches a fixed list of paths. Missing files are fine; their
// appearance is reported as a change.
func NewWatcher(paths []string, onChange func()) *Watcher {
	fixed := append([]string(nil), paths...)
	return newWatcher(func() []string { return fixed }, onChange)
}

// WatchGlob watches every file matching pattern, re-evaluated on each poll.
func WatchGlob(pattern string, onChange func()) *Watcher {
	return newWatcher(func() []string {
		matches, _ := filepath.Glob(pattern)
		return matches
	}, onChange)
}

func newWatcher(list func() []string, onChange func()) *Watcher {
	return &Watcher{
		list:     list,
		onChange: onChange,
		interval: 2 * time.Second,
		mtimes:   make(map[string]time.Time),
		stopCh:   make(chan struct{}),
	}
}

// SetInterval overrides the default polling interval (2s). Call before Start.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.interval = d
	}
}

// Start begins polling in a goroutine. Subsequent calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.snapshotLocked()
	interval := w.interval
	w.mu.Unlock()

	go w.loop(interval)
}

// Stop halts polling. Safe to call multiple times and concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.stopCh)
	})
}

// Check polls once and calls onChange synchronously if anything changed.
// Returns whether a change was seen.
func (w *Watcher) Check() bool {
	w.mu.Lock()
	changed := w.checkLocked()
	if changed {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if changed {
		w.onChange()
	}
	return changed
}

func (w *Watcher) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// checkLocked compares current mtimes with the snapshot. Must hold mu.
func (w *Watcher) checkLocked() bool {
	seen := 0
	for _, path := range w.list() {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		prev, ok := w.mtimes[path]
		if !ok || !info.ModTime().Equal(prev) {
			return true
		}
		seen++
	}
	// Anything snapshotted but no longer found was removed.
	return seen != len(w.mtimes)
}

// snapshotLocked records current mtimes. Must hold mu.
func (w *Watcher) snapshotLocked() {
	clear(w.mtimes)
	for _, path := range w.list() {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}

package scene

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the event bursts editors produce for one save
// (write, rename, chmod) into a single rebuild.
const watchDebounce = 100 * time.Millisecond

// Watcher reports writes to one scene file for dev-mode world rebuilds.
// It watches the file's directory, because editors that save through a
// temp-file rename would otherwise detach the watch, and forwards only
// events for the target path.
type Watcher struct {
	watcher *fsnotify.Watcher
	target  string

	Events chan string
	Errors chan error

	lastEmit time.Time
	closeCh  chan struct{}
	once     sync.Once
}

// NewWatcher watches the scene file at path.
func NewWatcher(path string) (*Watcher, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		watcher: w,
		target:  target,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching. Events and Errors are closed by the run loop once
// it drains out, so a pending send can never hit a closed channel.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !w.matchesTarget(event.Name) {
				continue
			}
			if !w.shouldEmit(time.Now()) {
				continue
			}
			select {
			case w.Events <- w.target:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// matchesTarget reports whether an event path names the watched file.
// Sibling files in the same directory do not trigger rebuilds.
func (w *Watcher) matchesTarget(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == w.target
}

// shouldEmit applies the debounce window. Only the run goroutine and
// tests call it.
func (w *Watcher) shouldEmit(now time.Time) bool {
	if now.Sub(w.lastEmit) < watchDebounce {
		return false
	}
	w.lastEmit = now
	return true
}

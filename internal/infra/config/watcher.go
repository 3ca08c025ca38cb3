package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses editor write bursts into one change event.
const watchDebounce = 200 * time.Millisecond

// Watcher reports changes to the settings file so a running UI can pick up
// hand edits. Events are delivered on a coalescing channel; consumers that
// lag see at most one pending event.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan struct{}
	done   chan struct{}
}

// NewWatcher watches the settings file inside dir. The directory itself is
// watched so the atomic-rename save pattern is observed too. Returns an
// error when the directory does not exist or inotify is unavailable.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:     fw,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.run(filepath.Join(dir, "settings.toml"))
	return w, nil
}

// Events returns the change notification channel.
func (w *Watcher) Events() <-chan struct{} { return w.events }

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) run(path string) {
	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
				debounceC = debounce.C
			} else {
				debounce.Reset(watchDebounce)
			}
		case <-debounceC:
			select {
			case w.events <- struct{}{}:
			default:
			}
			debounce = nil
			debounceC = nil
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

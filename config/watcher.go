package config

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events an editor save produces
const reloadDelay = 100 * time.Millisecond

// Watcher re-reads a config file whenever it changes on disk
// The parent directory is watched so atomic rename-on-save is seen too
type Watcher struct {
	path    string
	overlay func(*Config)
	watcher *fsnotify.Watcher
	updates chan *Config
	errors  chan error
	done    chan struct{}
}

// NewWatcher starts watching path
// overlay, when non-nil, runs on every reloaded revision before validation so
// environment and command line overrides survive a save
func NewWatcher(path string, overlay func(*Config)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		overlay: overlay,
		watcher: fw,
		updates: make(chan *Config, 1),
		errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates delivers each successfully parsed revision, latest wins
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Errors delivers parse and watch failures, latest wins
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching; the channels are not closed
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}

func (w *Watcher) run() {
	timer := time.NewTimer(reloadDelay)
	timer.Stop()

	for {
		select {
		case <-w.done:
			timer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(reloadDelay)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			send(w.errors, err)

		case <-timer.C:
			c, err := load(w.path, w.overlay)
			if err != nil {
				log.Printf("[CONFIG] reload failed: %v", err)
				send(w.errors, err)
				continue
			}
			log.Printf("[CONFIG] reloaded %s", w.path)
			send(w.updates, c)
		}
	}
}

// send replaces any unread value so the reader always sees the latest
func send[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

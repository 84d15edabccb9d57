package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload is one result of re-reading a watched override file.
type Reload struct {
	Snapshot Snapshot
	Err      error
}

// Watcher re-parses an override file whenever it changes. Results are only
// published on Reloads; applying them is left to the game loop.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan Reload
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Watch starts watching path. The containing directory is watched so editors
// that replace the file on save are still seen.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    filepath.Clean(path),
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
	}
	watcher.wg.Add(1)
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes Reloads.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Reloads)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	// Loads wait for 100ms of quiet so a save that emits several events is
	// read once, after the last write.
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settle = time.After(100 * time.Millisecond)
		case <-settle:
			settle = nil
			s, err := LoadFile(w.path)
			w.publish(Reload{Snapshot: s, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publish(Reload{Err: err})
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) publish(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	}
}

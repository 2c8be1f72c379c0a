package mode

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/termstrike/event"
)

// Watcher reloads the mode config file when it changes on disk and
// posts ConfigReloaded into the game's event queue. The watcher
// goroutine is a second queue producer; the game loop applies the
// fresh modes on its next iteration.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	queue   *event.Queue

	// onLoad receives successfully parsed mode sets
	onLoad func([]Mode)

	done chan struct{}
}

// Watch starts watching path for changes. onLoad runs on the watcher
// goroutine with each successfully reloaded mode set; parse errors
// keep the previous config (a half-saved file must not kill the run).
func Watch(path string, queue *event.Queue, onLoad func([]Mode)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace files on save, which drops
	// a direct file watch
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    path,
		watcher: fw,
		queue:   queue,
		onLoad:  onLoad,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the game keeps its config
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return
	}
	modes, err := Load(data)
	if err != nil {
		return
	}
	if w.onLoad != nil {
		w.onLoad(modes)
	}
	w.queue.Emit(event.ConfigReloaded, 0)
}

// Close stops the watcher goroutine
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

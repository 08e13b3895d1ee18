package status

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/schmitthub/promptgit/internal/logger"
)

// watcher owns one recursive fsnotify subscription rooted at a single
// directory. Events are forwarded to the notify callback from a dedicated
// goroutine until Close is called.
type watcher struct {
	root string
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// newWatcher subscribes to root and every directory below it. Directories
// created after the walk are added as their create events arrive, so new
// subtrees stay covered.
func newWatcher(root string, notify func(fsnotify.Event)) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &watcher{root: root, fsw: fsw, done: make(chan struct{})}
	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}
	go w.loop(notify)
	return w, nil
}

func (w *watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Entries can vanish between listing and visiting.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("watch subscription failed")
		}
		return nil
	})
}

func (w *watcher) loop(notify func(fsnotify.Event)) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			notify(ev)
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.addTree(ev.Name)
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Debug().Err(err).Str("root", w.root).Msg("watch error")
		}
	}
}

// Close stops event forwarding and releases every subscription under root.
func (w *watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

package record

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher reports changes to one record file. It never blocks: the game
// loop polls Changed once per tick.
type Watcher struct {
	w    *fsnotify.Watcher
	name string
}

// Watch watches the directory holding path, since the store replaces files
// by renaming over them.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{w: w, name: filepath.Base(path)}, nil
}

// Changed drains pending events and reports whether any touched the file.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return changed
			}
			if filepath.Base(ev.Name) == w.name && (ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				changed = true
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return changed
			}
			log.Warn().Err(err).Str("file", w.name).Msg("watch error")
		default:
			return changed
		}
	}
}

func (w *Watcher) Close() error { return w.w.Close() }

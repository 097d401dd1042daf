package field

import (
	"github.com/MobRulesGames/fsnotify"
	"github.com/MobRulesGames/gridmadness/logging"
)

// MapWatcher reports when the map file backing the grid is rewritten on
// disk, so the frame loop can reload it without blocking.
type MapWatcher struct {
	fsw     *fsnotify.Watcher
	changed chan struct{}
}

func WatchMap(path string) (*MapWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Watch(path); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &MapWatcher{
		fsw:     fsw,
		changed: make(chan struct{}, 1),
	}
	go w.run()
	return w, nil
}

func (w *MapWatcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Event:
			if !ok {
				return
			}
			if ev.IsModify() || ev.IsCreate() {
				// Collapse bursts of events into one pending notification.
				select {
				case w.changed <- struct{}{}:
				default:
				}
			}
		case err, ok := <-w.fsw.Error:
			if !ok {
				return
			}
			logging.Warn("map watcher error", "err", err)
		}
	}
}

// Changed holds at most one pending notification. Poll it with a
// non-blocking receive once per frame.
func (w *MapWatcher) Changed() <-chan struct{} {
	return w.changed
}

func (w *MapWatcher) Close() {
	w.fsw.Close()
}

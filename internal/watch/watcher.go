package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches exactly one file for content changes and raises a single
// debounced signal per logical save. It watches the file's directory rather
// than the file itself: editors that write to a temp file and rename it over
// the target, or delete and recreate it, would otherwise silently detach
// the watch.
type Watcher struct {
	target   string
	fsw      *fsnotify.Watcher
	debounce *Debouncer
	wg       sync.WaitGroup
}

// NewWatcher resolves path to its absolute form and begins watching.
// onChange runs on a timer goroutine once per debounced burst of events for
// the resolved path; quiet values below MinQuietWindow are raised to it.
func NewWatcher(path string, quiet time.Duration, onChange func()) (*Watcher, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(target)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	if quiet < MinQuietWindow {
		quiet = MinQuietWindow
	}
	w := &Watcher{
		target:   target,
		fsw:      fsw,
		debounce: NewDebouncer(quiet, onChange),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.debounce.Trigger()
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Transient notification errors: keep watching, the next
			// event re-arms the debouncer.
		}
	}
}

// relevant reports whether ev is a content change of the watched file.
// Writes and creations count (a rename onto the target shows up as Create
// on the target name); removals, renames away, chmods, and events for other
// paths do not.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	if resolved, err := filepath.EvalSymlinks(name); err == nil {
		name = resolved
	}
	return name == w.target
}

// Close stops watching and cancels any pending debounce timer, so no new
// callback fires after it returns.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	w.wg.Wait()
	w.debounce.Stop()
	return err
}

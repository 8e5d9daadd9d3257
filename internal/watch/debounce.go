package watch

import (
	"sync"
	"time"
)

const (
	// DefaultQuietWindow is how long the file must stay quiet after a burst
	// of events before the callback fires. Build tools rewrite a PDF in
	// many small writes; anything shorter reloads mid-write.
	DefaultQuietWindow = 3 * time.Second

	// MinQuietWindow is the floor applied by the watcher.
	MinQuietWindow = 500 * time.Millisecond
)

// Debouncer coalesces a bursty event stream into a single callback fired
// once the stream has been quiet for the configured window. Only the most
// recently scheduled timer may fire; earlier timers are cancelled or
// suppressed when they lose the race.
type Debouncer struct {
	mu        sync.Mutex
	quiet     time.Duration
	fire      func()
	timer     *time.Timer
	lastEvent time.Time
	stopped   bool
}

// NewDebouncer creates a debouncer firing fire after each quiet window.
// A non-positive quiet falls back to DefaultQuietWindow.
func NewDebouncer(quiet time.Duration, fire func()) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &Debouncer{quiet: quiet, fire: fire}
}

// Trigger records an event and (re)starts the quiet-window timer, cancelling
// any pending one. Safe to call from any goroutine.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.lastEvent = time.Now()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.expire)
}

// expire runs on the timer goroutine. A timer whose Stop raced with its
// firing re-checks the last event time under the lock, so a superseded
// callback never fires alongside its replacement.
func (d *Debouncer) expire() {
	d.mu.Lock()
	if d.stopped || time.Since(d.lastEvent) < d.quiet {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	// The callback may be slow (it pokes the reload signal); keep it
	// outside the lock.
	d.fire()
}

// Stop cancels any pending timer. After Stop returns, no new callback will
// be scheduled and a not-yet-started one will not fire.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

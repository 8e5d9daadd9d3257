package doc

import (
	"image"
	"sync/atomic"
	"time"

	statepkg "github.com/kk-code-lab/pdv/internal/state"
)

// Outcome is the result of one reload pipeline run. Skipped is not an error:
// it means another run was in flight or the minimum spacing had not elapsed.
type Outcome int

const (
	Loaded Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return "unknown"
}

const (
	// DefaultBaseDPI is the rasterization resolution at zoom 1.0. Higher
	// zoom levels scale it up so the cropped view stays sharp.
	DefaultBaseDPI = 150.0

	// DefaultMinInterval spaces reload attempts apart, measured from the end
	// of the previous attempt. Absorbs duplicate signals that slip past
	// debouncing.
	DefaultMinInterval = 2 * time.Second

	defaultMaxAttempts = 3
)

// Loader is the reload pipeline: rasterize at the current zoom, then
// atomically publish into DocumentState, or leave the state untouched on
// failure. At most one run executes at a time; excess callers are rejected,
// not queued.
type Loader struct {
	Path   string
	Raster Rasterizer
	State  *statepkg.DocumentState

	BaseDPI     float64
	MinInterval time.Duration
	MaxAttempts int
	// RetryDelays are slept before each retry (attempt 2 onward). Editors
	// are often still writing the file when the debounced signal fires;
	// escalating delays absorb that window.
	RetryDelays []time.Duration
	// OnStart, when set, runs after admission, before rasterization starts.
	// The application uses it to repaint the status line with the
	// reload-in-progress marker.
	OnStart func()

	busy atomic.Bool
}

// NewLoader builds a Loader with the default tuning.
func NewLoader(path string, r Rasterizer, st *statepkg.DocumentState) *Loader {
	return &Loader{
		Path:        path,
		Raster:      r,
		State:       st,
		BaseDPI:     DefaultBaseDPI,
		MinInterval: DefaultMinInterval,
		MaxAttempts: defaultMaxAttempts,
		RetryDelays: []time.Duration{500 * time.Millisecond, time.Second},
	}
}

// Reload runs one pipeline pass. force bypasses the minimum-spacing check;
// nothing bypasses the admission gate. On failure the previously published
// pages remain fully intact and displayable.
func (l *Loader) Reload(force bool) Outcome {
	if !l.busy.CompareAndSwap(false, true) {
		return Skipped
	}
	defer l.busy.Store(false)

	if !force && !l.State.ReloadDue(l.MinInterval) {
		return Skipped
	}

	l.State.SetReloading(true)
	defer l.State.SetReloading(false)
	if l.OnStart != nil {
		l.OnStart()
	}

	pages, err := l.rasterizeWithRetry(l.BaseDPI * l.State.Zoom())
	if err != nil {
		l.State.MarkAttempt()
		return Failed
	}

	l.State.Publish(pages)
	return Loaded
}

func (l *Loader) rasterizeWithRetry(dpi float64) ([]image.Image, error) {
	attempts := l.MaxAttempts
	if attempts < 1 {
		attempts = defaultMaxAttempts
	}

	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(l.retryDelay(i - 1))
		}
		var pages []image.Image
		if pages, err = l.Raster.Rasterize(l.Path, dpi); err == nil {
			return pages, nil
		}
	}
	return nil, err
}

func (l *Loader) retryDelay(i int) time.Duration {
	if len(l.RetryDelays) == 0 {
		return 500 * time.Millisecond
	}
	if i >= len(l.RetryDelays) {
		i = len(l.RetryDelays) - 1
	}
	return l.RetryDelays[i]
}

package state

import (
	"image"
	"math"
	"sync"
	"time"
)

// Zoom bounds. 1.0 shows the full page; higher levels crop toward the page
// centre while rasterizing at a matching higher resolution.
const (
	MinZoom  = 1.0
	MaxZoom  = 4.0
	ZoomStep = 0.1
)

// Snapshot is an immutable view of DocumentState taken under its lock.
// The renderer works from snapshots only; published page images are never
// mutated, so reading them after the lock is released is safe.
type Snapshot struct {
	Page        image.Image // current page, nil before the first load
	CurrentPage int
	PageCount   int
	Zoom        float64
	Reloading   bool
	Notice      string
}

// DocumentState is the single source of truth for the viewed document.
// It is read by the render path and written by both the input loop and the
// reload pipeline, so every multi-field access goes through methods holding
// the mutex. The mutex only ever guards in-memory field updates; it is never
// held across rasterization or drawing.
type DocumentState struct {
	mu          sync.Mutex
	pages       []image.Image
	currentPage int
	zoom        float64
	reloading   bool
	lastReload  time.Time
	notice      string
}

// NewDocumentState returns an empty state at the default zoom level.
func NewDocumentState() *DocumentState {
	return &DocumentState{zoom: MinZoom}
}

// Snapshot returns a consistent view of the current state.
func (s *DocumentState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		CurrentPage: s.currentPage,
		PageCount:   len(s.pages),
		Zoom:        s.zoom,
		Reloading:   s.reloading,
		Notice:      s.notice,
	}
	if s.currentPage >= 0 && s.currentPage < len(s.pages) {
		snap.Page = s.pages[s.currentPage]
	}
	return snap
}

// Publish atomically replaces the page set with a freshly rasterized one,
// clamping the current page so the index never points past the new set.
// It also stamps the reload time and clears any stale notice.
func (s *DocumentState) Publish(pages []image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages = pages
	if s.currentPage > len(pages)-1 {
		s.currentPage = len(pages) - 1
	}
	if s.currentPage < 0 {
		s.currentPage = 0
	}
	s.lastReload = time.Now()
	s.notice = ""
}

// MarkAttempt stamps the reload time without touching the page set. Failed
// reloads call this so duplicate signals that slip past debouncing still hit
// the minimum-spacing check.
func (s *DocumentState) MarkAttempt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReload = time.Now()
}

// ReloadDue reports whether at least min has elapsed since the last reload
// attempt completed.
func (s *DocumentState) ReloadDue(min time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastReload) >= min
}

// SetReloading flags that a reload pipeline run is rasterizing. The flag
// annotates the status line and lets the change watcher drop signals; the
// pipeline's admission gate is what actually prevents overlapping reloads.
func (s *DocumentState) SetReloading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloading = v
}

// Reloading reports whether a reload is currently rasterizing.
func (s *DocumentState) Reloading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloading
}

// NextPage advances the page index, reporting whether it moved.
func (s *DocumentState) NextPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage >= len(s.pages)-1 {
		return false
	}
	s.currentPage++
	s.notice = ""
	return true
}

// PrevPage moves the page index back, reporting whether it moved.
func (s *DocumentState) PrevPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage <= 0 {
		return false
	}
	s.currentPage--
	s.notice = ""
	return true
}

// CurrentPage returns the current page index.
func (s *DocumentState) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

// PageCount returns the number of loaded pages.
func (s *DocumentState) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Zoom returns the current zoom level.
func (s *DocumentState) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// AdjustZoom applies delta to the zoom level, clamped to [MinZoom, MaxZoom]
// and rounded to the step grid so repeated adjustments don't accumulate
// float drift. It returns the previous and new levels; equal values mean the
// bound was already reached.
func (s *DocumentState) AdjustZoom(delta float64) (prev, next float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev = s.zoom
	next = math.Round((s.zoom+delta)*10) / 10
	if next > MaxZoom {
		next = MaxZoom
	}
	if next < MinZoom {
		next = MinZoom
	}
	s.zoom = next
	return prev, next
}

// SetZoom restores a zoom level, clamped to the valid range. Used to revert
// a tentative zoom change whose reload did not publish.
func (s *DocumentState) SetZoom(z float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if z > MaxZoom {
		z = MaxZoom
	}
	if z < MinZoom {
		z = MinZoom
	}
	s.zoom = z
}

// SetNotice sets a transient status-line message. The next successful
// publish or page move clears it.
func (s *DocumentState) SetNotice(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = msg
}

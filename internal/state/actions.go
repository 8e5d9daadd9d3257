package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type PrevPageAction struct{}
type NextPageAction struct{}

// ===== ZOOM ACTIONS =====
// Zoom changes re-rasterize at the new resolution, so they are orchestrated
// by the application rather than the reducer.

type ZoomInAction struct{}
type ZoomOutAction struct{}

// ===== RELOAD ACTIONS =====

// ReloadAction is the manual 'r' reload. It bypasses the minimum-spacing
// check but not the admission gate.
type ReloadAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type QuitAction struct{}

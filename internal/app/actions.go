package app

import (
	docpkg "github.com/kk-code-lab/pdv/internal/doc"
	statepkg "github.com/kk-code-lab/pdv/internal/state"
)

// handleAction dispatches one action and reports whether a redraw is due.
// Pure view mutations go through the reducer; zoom, manual reload, and quit
// have side effects and are handled here.
func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.ZoomInAction:
		return app.changeZoom(statepkg.ZoomStep)
	case statepkg.ZoomOutAction:
		return app.changeZoom(-statepkg.ZoomStep)
	case statepkg.ReloadAction:
		app.performReload(true)
		return true
	}

	return app.reducer.Reduce(app.state, action)
}

// changeZoom tentatively applies the new level and reloads at the matching
// resolution. When the reload does not publish, the level reverts: zoom must
// never point at a resolution that was never rendered.
func (app *Application) changeZoom(delta float64) bool {
	prev, next := app.state.AdjustZoom(delta)
	if prev == next {
		return false
	}
	if app.loader.Reload(true) != docpkg.Loaded {
		app.state.SetZoom(prev)
		app.state.SetNotice("zoom change failed, keeping previous view")
	}
	return true
}

// performReload runs the pipeline. Failures surface on the status line and
// the last good pages stay on screen; skips are silent.
func (app *Application) performReload(force bool) {
	if app.loader.Reload(force) == docpkg.Failed {
		app.state.SetNotice("reload failed, file may be locked; showing last good copy")
	}
}

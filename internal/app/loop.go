package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
)

// Run drives the cooperative event loop: one goroutine, no parallel
// iterations. Each pass services a pending reload signal ahead of buffered
// keystrokes, then waits on key events, the reload signal, queued actions,
// and interrupt signals. Reloads execute synchronously inside the loop, so
// at most one runs at a time and its published state is visible to the very
// next redraw.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.redraw()

	eventCh := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				// Fini unblocks PollEvent with nil on shutdown.
				return
			}
			eventCh <- ev
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, interruptSignals()...)
	defer signal.Stop(sigCh)

	renderPending := false
	for !app.shouldQuit {
		if renderPending {
			app.redraw()
			renderPending = false
		}

		// File changes beat pending keystrokes.
		select {
		case <-app.reloadCh:
			app.performReload(false)
			renderPending = true
			continue
		default:
		}

		select {
		case ev := <-eventCh:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-app.reloadCh:
			app.performReload(false)
			renderPending = true
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigCh:
			app.shouldQuit = true
		}

		if app.drainActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	default:
		return false
	}
}

// drainActions empties the action queue without blocking.
func (app *Application) drainActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	docpkg "github.com/kk-code-lab/pdv/internal/doc"
	statepkg "github.com/kk-code-lab/pdv/internal/state"
	inputui "github.com/kk-code-lab/pdv/internal/ui/input"
	renderui "github.com/kk-code-lab/pdv/internal/ui/render"
	watchpkg "github.com/kk-code-lab/pdv/internal/watch"
)

// Application represents the running viewer.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.DocumentState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	loader     *docpkg.Loader
	watcher    *watchpkg.Watcher
	actionCh   chan statepkg.Action
	reloadCh   chan struct{}
	shouldQuit bool
}

// NewApplication loads the document, initialises the screen, and wires the
// change watcher. The first rasterization runs before the screen is touched
// so a startup failure leaves the terminal exactly as it was.
func NewApplication(path string) (*Application, error) {
	st := statepkg.NewDocumentState()
	loader := docpkg.NewLoader(path, docpkg.FitzRasterizer{}, st)
	if loader.Reload(true) != docpkg.Loaded {
		return nil, fmt.Errorf("could not render %s", path)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	actionCh := make(chan statepkg.Action, 10)
	app := &Application{
		screen:   screen,
		state:    st,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewInputHandler(actionCh),
		loader:   loader,
		actionCh: actionCh,
		reloadCh: make(chan struct{}, 1),
	}
	// Reloads run on the loop goroutine, so repainting from the hook is
	// safe; it puts the RELOADING marker up while rasterization runs.
	loader.OnStart = app.redraw

	watcher, err := watchpkg.NewWatcher(path, watchpkg.DefaultQuietWindow, app.requestReload)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	app.watcher = watcher

	return app, nil
}

// requestReload runs on the debounce timer goroutine. It only reads shared
// state and pokes the capacity-1 signal channel; the loop performs the
// reload. A
// signal raised while a reload is running or inside the spacing window is
// dropped, not queued.
func (app *Application) requestReload() {
	if app.state.Reloading() {
		return
	}
	if !app.state.ReloadDue(app.loader.MinInterval) {
		return
	}
	select {
	case app.reloadCh <- struct{}{}:
	default:
	}
}

// Close stops the watcher (cancelling any pending debounce timer) and
// restores the terminal. Every exit path converges here.
func (app *Application) Close() error {
	var err error
	if app.watcher != nil {
		err = app.watcher.Close()
	}
	app.screen.Fini()
	return err
}

func (app *Application) redraw() {
	app.renderer.Render(app.state.Snapshot())
}

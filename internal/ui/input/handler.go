package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/pdv/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input. Unrecognized keys are no-ops.
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.PrevPageAction{}
		return true
	case tcell.KeyRight:
		ih.actionChan <- statepkg.NextPageAction{}
		return true
	case tcell.KeyRune:
		return ih.processRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'h':
		ih.actionChan <- statepkg.PrevPageAction{}
	case 'l':
		ih.actionChan <- statepkg.NextPageAction{}
	case '+', '=': // '=' is unshifted '+' on common layouts
		ih.actionChan <- statepkg.ZoomInAction{}
	case '-':
		ih.actionChan <- statepkg.ZoomOutAction{}
	case 'r':
		ih.actionChan <- statepkg.ReloadAction{}
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}
	return true
}

package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/pdv/internal/state"
)

// Renderer draws the current page and status line to the screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame from an immutable state snapshot. A page that
// fails to draw is reported on the status line; the snapshot's origin state
// is never touched.
func (r *Renderer) Render(snap statepkg.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()

	var renderErr error
	if h > 1 {
		renderErr = r.drawPage(snap, w, h-1)
	}
	r.drawStatusLine(formatStatusLine(snap, renderErr), w, h)

	r.screen.Show()
}

// drawPage rasters the current page into the cell area above the status
// line using half-block cells: the foreground colours the top pixel of each
// cell, the background the bottom one.
func (r *Renderer) drawPage(snap statepkg.Snapshot, cols, rows int) error {
	if snap.Page == nil {
		return nil
	}

	cells := scaleToCells(cropForZoom(snap.Page, snap.Zoom), cols, rows)
	if cells == nil {
		return errors.New("page does not fit the screen")
	}

	b := cells.Bounds()
	offX := (cols - b.Dx()) / 2
	offY := (rows - (b.Dy()+1)/2) / 2

	for y := 0; y < (b.Dy()+1)/2; y++ {
		for x := 0; x < b.Dx(); x++ {
			top := cells.RGBAAt(x, 2*y)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B)))
			if 2*y+1 < b.Dy() {
				bottom := cells.RGBAAt(x, 2*y+1)
				style = style.
					Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			}
			r.screen.SetContent(offX+x, offY+y, '▀', nil, style)
		}
	}
	return nil
}

// drawStatusLine renders the footer on the bottom row.
func (r *Renderer) drawStatusLine(text string, w, h int) {
	if h < 1 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Reverse(true)

	x := 0
	for _, rn := range truncateToWidth(text, w) {
		r.screen.SetContent(x, y, rn, nil, style)
		x += runeDisplayWidth(rn)
	}
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

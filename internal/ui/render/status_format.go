package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	statepkg "github.com/kk-code-lab/pdv/internal/state"
)

const keyHelp = "h/l pages · +/- zoom · r reload · q quit"

// formatStatusLine builds the one-line footer: page position, zoom, reload
// marker, any transient notice, then the key help.
func formatStatusLine(snap statepkg.Snapshot, renderErr error) string {
	parts := make([]string, 0, 5)

	if snap.PageCount > 0 {
		parts = append(parts,
			fmt.Sprintf("Page %d/%d", snap.CurrentPage+1, snap.PageCount),
			fmt.Sprintf("Zoom: %.1fx", snap.Zoom))
	} else {
		parts = append(parts, "No document loaded")
	}
	if snap.Reloading {
		parts = append(parts, "RELOADING…")
	}
	if snap.Notice != "" {
		parts = append(parts, snap.Notice)
	}
	if renderErr != nil {
		parts = append(parts, "display error: "+renderErr.Error())
	}
	parts = append(parts, keyHelp)

	return strings.Join(parts, " | ")
}

// truncateToWidth shortens s to fit into w display columns.
func truncateToWidth(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}

func runeDisplayWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

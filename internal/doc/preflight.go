package doc

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Preflight rejects paths that cannot possibly render, before any terminal
// mode change: the path must be a regular file holding a structurally valid
// PDF. Relaxed validation matches what MuPDF will accept later.
func Preflight(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: not a regular file", path)
	}

	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, cfg); err != nil {
		return fmt.Errorf("%s: not a valid PDF: %w", path, err)
	}
	if n, err := api.PageCountFile(path); err != nil {
		return fmt.Errorf("page count of %s: %w", path, err)
	} else if n == 0 {
		return fmt.Errorf("%s: document has no pages", path)
	}
	return nil
}

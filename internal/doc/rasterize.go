package doc

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Rasterizer turns the document at path into an ordered sequence of page
// images at the given resolution. Implementations must tolerate repeated
// invocations on the same path at different resolutions.
type Rasterizer interface {
	Rasterize(path string, dpi float64) ([]image.Image, error)
}

// FitzRasterizer rasterizes PDF pages through MuPDF. The document is opened
// fresh on every call: the file on disk may have been replaced since the
// last one.
type FitzRasterizer struct{}

// Rasterize renders every page of the PDF at path to an image.
func (FitzRasterizer) Rasterize(path string, dpi float64) ([]image.Image, error) {
	d, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer d.Close()

	n := d.NumPage()
	if n == 0 {
		return nil, fmt.Errorf("%s: document has no pages", path)
	}

	pages := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		img, err := d.ImageDPI(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("rasterize page %d: %w", i+1, err)
		}
		pages = append(pages, img)
	}
	return pages, nil
}

package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// cropForZoom returns the centred window of img visible at the given zoom
// level. The page is rasterized at a zoom-scaled resolution, so the cropped
// window still carries full detail.
func cropForZoom(img image.Image, zoom float64) image.Image {
	if zoom <= 1.0 {
		return img
	}
	b := img.Bounds()
	cw := int(float64(b.Dx()) / zoom)
	ch := int(float64(b.Dy()) / zoom)
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	x0 := b.Min.X + (b.Dx()-cw)/2
	y0 := b.Min.Y + (b.Dy()-ch)/2

	out := image.NewRGBA(image.Rect(0, 0, cw, ch))
	xdraw.Copy(out, image.Point{}, img, image.Rect(x0, y0, x0+cw, y0+ch), xdraw.Src, nil)
	return out
}

// scaleToCells fits img into a cols x rows cell grid, preserving aspect
// ratio. Each cell holds two stacked pixels (drawn as a half block), so the
// pixel budget is cols x 2*rows.
func scaleToCells(img image.Image, cols, rows int) *image.RGBA {
	b := img.Bounds()
	maxW := cols
	maxH := rows * 2
	if maxW < 1 || maxH < 2 || b.Dx() < 1 || b.Dy() < 1 {
		return nil
	}

	scale := float64(maxW) / float64(b.Dx())
	if s := float64(maxH) / float64(b.Dy()); s < scale {
		scale = s
	}
	dw := int(float64(b.Dx()) * scale)
	dh := int(float64(b.Dy()) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

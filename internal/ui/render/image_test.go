package render

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCropForZoomNoopAtBaseZoom(t *testing.T) {
	img := solidImage(100, 80, color.RGBA{R: 255, A: 255})
	if got := cropForZoom(img, 1.0); got != image.Image(img) {
		t.Error("Expected zoom 1.0 to return the image unchanged")
	}
}

func TestCropForZoomHalvesWindowAtDoubleZoom(t *testing.T) {
	img := solidImage(100, 80, color.RGBA{G: 255, A: 255})
	got := cropForZoom(img, 2.0)

	b := got.Bounds()
	if b.Dx() != 50 || b.Dy() != 40 {
		t.Errorf("Expected 50x40 window at zoom 2.0, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestCropForZoomIsCentred(t *testing.T) {
	// Left half red, right half blue; zoomed view must straddle the middle.
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			if x < 50 {
				img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
			}
		}
	}

	got := cropForZoom(img, 2.0)
	b := got.Bounds()
	left := got.(*image.RGBA).RGBAAt(b.Min.X, b.Min.Y)
	right := got.(*image.RGBA).RGBAAt(b.Max.X-1, b.Min.Y)
	if left.R != 255 {
		t.Errorf("Expected red on the left edge of the centred crop, got %v", left)
	}
	if right.B != 255 {
		t.Errorf("Expected blue on the right edge of the centred crop, got %v", right)
	}
}

func TestScaleToCellsFitsBudget(t *testing.T) {
	img := solidImage(300, 400, color.RGBA{B: 255, A: 255})
	got := scaleToCells(img, 80, 24)
	if got == nil {
		t.Fatal("Expected a scaled raster")
	}

	b := got.Bounds()
	if b.Dx() > 80 || b.Dy() > 48 {
		t.Errorf("Raster %dx%d exceeds the 80x48 pixel budget", b.Dx(), b.Dy())
	}
	// Aspect preserved: a portrait page stays portrait.
	if b.Dx() >= b.Dy() {
		t.Errorf("Expected portrait raster, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestScaleToCellsDegenerateArea(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{A: 255})
	if got := scaleToCells(img, 0, 5); got != nil {
		t.Error("Expected nil for a zero-width cell area")
	}
	if got := scaleToCells(img, 5, 0); got != nil {
		t.Error("Expected nil for a zero-height cell area")
	}
}

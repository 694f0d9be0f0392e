package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/swdee/go-perception"
)

func TestRasterBoxes(t *testing.T) {

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	box := perception.NewOriginExtentBox(40, 20, 30, 30)
	box.Class = 1
	box.Score = 0.75

	RasterBoxes(img, []perception.Box{box}, []string{"person", "face"}, DefaultFont())

	clr := colorFor(0)

	// left edge of the box outline at x=20, y from 40 to 69
	for y := 45; y < 70; y++ {
		if got := img.RGBAAt(20, y); got != clr {
			t.Fatalf("expected outline color at (20,%d), got %v", y, got)
		}
	}

	// inside of the box is untouched
	if got := img.RGBAAt(35, 55); got != (color.RGBA{}) {
		t.Errorf("expected empty pixel inside box, got %v", got)
	}

	// label background sits above the box
	if got := img.RGBAAt(20, 35); got == (color.RGBA{}) {
		t.Errorf("expected label background above box")
	}
}

func TestRasterBoxesOutside(t *testing.T) {

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	// fully outside the image, nothing is drawn
	RasterBoxes(img, []perception.Box{perception.NewCornerBox(20, 20, 30, 30)}, nil, DefaultFont())

	for _, v := range img.Pix {
		if v != 0 {
			t.Fatalf("expected untouched image")
		}
	}
}

func TestRasterBoxesTopEdge(t *testing.T) {

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	// a box touching the top has its label drawn inside it
	RasterBoxes(img, []perception.Box{perception.NewCornerBox(10, 0, 90, 60)}, nil, DefaultFont())

	if got := img.RGBAAt(12, 5); got != colorFor(0) {
		t.Errorf("expected label background inside box, got %v", got)
	}
}

func TestRasterBoxesInvalid(t *testing.T) {

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	// a zero Box has no valid format and is skipped
	RasterBoxes(img, []perception.Box{{}}, nil, DefaultFont())

	for _, v := range img.Pix {
		if v != 0 {
			t.Fatalf("expected untouched image")
		}
	}
}

func TestLabelPlacement(t *testing.T) {

	f := DefaultFont()
	box := image.Rect(100, 50, 200, 150)
	size := image.Pt(40, 10)

	bg, dot := f.labelPlacement(box, size, 2)

	// left aligned, sitting on the top edge of the box
	if bg != image.Rect(99, 30, 147, 50) || dot != image.Pt(103, 44) {
		t.Errorf("left: unexpected bg %v dot %v", bg, dot)
	}

	f.Alignment = Right
	bg, _ = f.labelPlacement(box, size, 2)

	if bg.Max.X != 201 {
		t.Errorf("right: expected label to end at 201, got %v", bg)
	}

	f.Alignment = Center
	bg, _ = f.labelPlacement(box, size, 2)

	if bg != image.Rect(126, 30, 174, 50) {
		t.Errorf("center: unexpected bg %v", bg)
	}
}

func TestClassName(t *testing.T) {
	names := []string{"person"}

	if got := className(names, 0); got != "person" {
		t.Errorf("expected person, got %s", got)
	}

	if got := className(names, 3); got != "3" {
		t.Errorf("expected 3, got %s", got)
	}
}

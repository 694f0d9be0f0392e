package render

import (
	"image/color"
	"testing"

	"github.com/swdee/go-perception"
	"gocv.io/x/gocv"
)

// blankImage returns a black BGR image of the given size
func blankImage(width, height int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width,
		gocv.MatTypeCV8UC3)
}

// pixelAt returns the color of the BGR image at x, y
func pixelAt(img gocv.Mat, x, y int) color.RGBA {
	v := img.GetVecbAt(y, x)
	return color.RGBA{R: v[2], G: v[1], B: v[0], A: 255}
}

// isBlank reports if every byte of the image is zero
func isBlank(img gocv.Mat) bool {
	for _, v := range img.ToBytes() {
		if v != 0 {
			return false
		}
	}
	return true
}

var black = color.RGBA{A: 255}

func TestBoxes(t *testing.T) {

	img := blankImage(200, 200)
	defer img.Close()

	box := perception.NewOriginExtentBox(60, 20, 100, 100)
	box.Score = 0.9

	Boxes(&img, []perception.Box{box, {}}, []string{"person"}, DefaultFont(), 1)

	clr := colorFor(0)

	// outline on the left edge
	for y := 70; y < 150; y += 10 {
		if got := pixelAt(img, 20, y); got != clr {
			t.Fatalf("expected outline at (20,%d), got %v", y, got)
		}
	}

	if got := pixelAt(img, 70, 110); got != black {
		t.Errorf("expected inside of box untouched, got %v", got)
	}

	// label background above the box, left of the text
	if got := pixelAt(img, 21, 58); got != clr {
		t.Errorf("expected label background above box, got %v", got)
	}

	// the zero Box has no valid format and is skipped
	if got := pixelAt(img, 5, 190); got != black {
		t.Errorf("expected untouched pixel, got %v", got)
	}
}

func TestDetections(t *testing.T) {

	img := blankImage(200, 200)
	defer img.Close()

	det := perception.Detection{
		X1: 20, Y1: 60, X2: 120, Y2: 160,
		Landmarks: []perception.LandmarkPoint{{X: 50, Y: 100}, {X: 90, Y: 100}, {X: 70, Y: 120}},
		Score:     0.8,
	}

	Detections(&img, []perception.Detection{det}, nil, DefaultFont(), 1)

	if got := pixelAt(img, 20, 100); got != colorFor(0) {
		t.Errorf("expected outline, got %v", got)
	}

	for i, lm := range det.Landmarks {
		if got := pixelAt(img, int(lm.X), int(lm.Y)); got != landmarkColor(i) {
			t.Errorf("landmark %d: expected %v, got %v", i, landmarkColor(i), got)
		}
	}

	// landmarks are dots, nothing joins them
	if got := pixelAt(img, 70, 100); got != black {
		t.Errorf("expected no line between landmarks, got %v", got)
	}
}

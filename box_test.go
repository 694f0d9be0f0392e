package perception

import (
	"errors"
	"math"
	"testing"
)

// almostEqual checks if two float32 values are approximately equal
func almostEqual(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a)-float64(b))) <= tolerance
}

func TestNewBoxFormats(t *testing.T) {

	b, err := NewBox(1, 2, 3, 4, FormatCorner)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Format() != FormatCorner {
		t.Errorf("expected format %s, got %s", FormatCorner, b.Format())
	}

	c, ok := b.Corner()

	if !ok || c != (Corner{Xmin: 1, Ymin: 2, Xmax: 3, Ymax: 4}) {
		t.Errorf("unexpected corner %+v ok=%v", c, ok)
	}

	b, err = NewBox(1, 2, 3, 4, FormatOriginExtent)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o, ok := b.OriginExtent()

	if !ok || o != (OriginExtent{Top: 1, Left: 2, W: 3, H: 4}) {
		t.Errorf("unexpected origin extent %+v ok=%v", o, ok)
	}

	for _, f := range []BoxFormat{0, FormatBoth, 42} {
		if _, err := NewBox(1, 2, 3, 4, f); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("format %s: expected ErrInvalidFormat, got %v", f, err)
		}
	}
}

func TestBoxFormatIsolation(t *testing.T) {

	b := NewOriginExtentBox(10, 20, 30, 40)

	if _, ok := b.Corner(); ok {
		t.Errorf("corner values must not be valid before conversion")
	}

	b2 := NewCornerBox(1, 2, 3, 4)

	if _, ok := b2.OriginExtent(); ok {
		t.Errorf("origin extent values must not be valid before conversion")
	}

	b.ToCorner()

	c, ok := b.Corner()

	if !ok {
		t.Fatalf("corner values expected valid after conversion")
	}

	expected := Corner{Xmin: 20, Ymin: 10, Xmax: 50, Ymax: 50}

	if c != expected {
		t.Errorf("expected %+v, got %+v", expected, c)
	}

	if b.Format() != FormatBoth {
		t.Errorf("expected format BOTH, got %s", b.Format())
	}
}

func TestBoxRoundTrip(t *testing.T) {

	corners := []Corner{
		{0, 0, 0, 0},
		{1, 2, 5, 9},
		{100.25, 40.5, 320.75, 480.125},
		{-10, -20, 10, 20},
	}

	for _, in := range corners {
		b := NewCornerBox(in.Xmin, in.Ymin, in.Xmax, in.Ymax)
		b.ToOriginExtent()

		o, _ := b.OriginExtent()
		rebuilt := NewOriginExtentBox(o.Top, o.Left, o.W, o.H)
		rebuilt.ToCorner()

		out, ok := rebuilt.Corner()

		if !ok || out != in {
			t.Errorf("round trip of %+v gave %+v", in, out)
		}
	}
}

func TestBoxToOriginExtentMapping(t *testing.T) {

	b := NewCornerBox(10, 20, 50, 80)
	o, err := b.AsOriginExtent()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := OriginExtent{Top: 20, Left: 10, W: 40, H: 60}

	if o != expected {
		t.Errorf("expected %+v, got %+v", expected, o)
	}
}

func TestBoxIdempotentConversion(t *testing.T) {

	b := NewCornerBox(3, 4, 13, 24)
	b.ToOriginExtent()
	first, _ := b.OriginExtent()

	b.ToOriginExtent()
	second, _ := b.OriginExtent()

	if first != second {
		t.Errorf("second conversion changed values %+v to %+v", first, second)
	}

	// converting back must not touch the original corner values
	b.ToCorner()

	c, _ := b.Corner()

	if c != (Corner{3, 4, 13, 24}) {
		t.Errorf("corner values changed to %+v", c)
	}

	if b.Format() != FormatBoth {
		t.Errorf("format reverted to %s", b.Format())
	}
}

func TestBoxAreaAgreement(t *testing.T) {

	boxes := []Box{
		NewCornerBox(1.5, 2.25, 10.75, 20.5),
		NewOriginExtentBox(7, 3, 12.5, 4.25),
	}

	for _, b := range boxes {
		before := b.Area()

		b.ToCorner()
		b.ToOriginExtent()

		c, _ := b.Corner()
		o, _ := b.OriginExtent()

		cornerArea := (c.Xmax - c.Xmin) * (c.Ymax - c.Ymin)
		extentArea := o.W * o.H

		if !almostEqual(cornerArea, extentArea, 1e-4) {
			t.Errorf("corner area %f and extent area %f differ", cornerArea, extentArea)
		}

		if !almostEqual(before, b.Area(), 1e-4) {
			t.Errorf("area changed by conversion from %f to %f", before, b.Area())
		}
	}
}

func TestBoxString(t *testing.T) {

	b := NewCornerBox(1, 2, 3, 4)
	b.Class = 7
	b.Score = 0.5

	if got := b.String(); got != "x1:1,y1:2,x2:3,y2:4,id:7,score:0.5" {
		t.Errorf("unexpected string %q", got)
	}

	o := NewOriginExtentBox(1, 2, 3, 4)
	o.Class = 2
	o.Score = 0.25

	if got := o.String(); got != "top:1,left:2,w:3,h:4,id:2,score:0.25" {
		t.Errorf("unexpected string %q", got)
	}

	// after conversion the corner fields are printed
	o.ToCorner()

	if got := o.String(); got != "x1:2,y1:1,x2:5,y2:5,id:2,score:0.25" {
		t.Errorf("unexpected string %q", got)
	}
}

func TestBoxIoU(t *testing.T) {

	a := NewCornerBox(0, 0, 10, 10)
	b := NewOriginExtentBox(0, 5, 10, 10)

	// overlap is 5x10 = 50, union is 150
	if iou := a.IoU(&b); !almostEqual(iou, 1.0/3.0, 1e-5) {
		t.Errorf("expected IoU 0.333, got %f", iou)
	}

	// IoU must not convert the boxes it was called with
	if b.Format() != FormatOriginExtent {
		t.Errorf("IoU modified box format to %s", b.Format())
	}

	far := NewCornerBox(20, 20, 30, 30)

	if iou := a.IoU(&far); iou != 0 {
		t.Errorf("expected no overlap, got %f", iou)
	}

	if iou := a.IoU(&a); !almostEqual(iou, 1, 1e-6) {
		t.Errorf("expected IoU 1 with itself, got %f", iou)
	}
}

func TestBoxDilate(t *testing.T) {

	b := NewCornerBox(0, 0, 10, 10)
	b.Score = 0.9

	// distance = 100 * 1.5 / 40 = 3.75
	out, err := b.Dilate(1.5)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _ := out.Corner()

	if !almostEqual(c.Xmin, -3.75, 1) || !almostEqual(c.Ymin, -3.75, 1) ||
		!almostEqual(c.Xmax, 13.75, 1) || !almostEqual(c.Ymax, 13.75, 1) {
		t.Errorf("unexpected dilated box %+v", c)
	}

	if out.Score != b.Score {
		t.Errorf("expected score to be kept, got %f", out.Score)
	}

	if b.Format() != FormatCorner {
		t.Errorf("Dilate modified box format to %s", b.Format())
	}

	point := NewCornerBox(5, 5, 5, 5)

	if _, err := point.Dilate(1.5); !errors.Is(err, ErrEmptyExtent) {
		t.Errorf("expected ErrEmptyExtent for degenerate box, got %v", err)
	}

	var zero Box

	if _, err := zero.Dilate(1.5); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for zero box, got %v", err)
	}
}

func TestBoxInvalidFormat(t *testing.T) {

	var b Box

	if b.Format().Valid() {
		t.Fatalf("zero Box must not have a valid format")
	}

	if err := b.ToCorner(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ToCorner: expected ErrInvalidFormat, got %v", err)
	}

	if err := b.ToOriginExtent(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ToOriginExtent: expected ErrInvalidFormat, got %v", err)
	}

	if _, err := b.AsCorner(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("AsCorner: expected ErrInvalidFormat, got %v", err)
	}

	if _, err := b.AsOriginExtent(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("AsOriginExtent: expected ErrInvalidFormat, got %v", err)
	}

	// failed conversions leave the box untouched and both accessors agree
	if _, ok := b.Corner(); ok {
		t.Errorf("corner values reported valid on zero Box")
	}

	if _, ok := b.OriginExtent(); ok {
		t.Errorf("origin extent values reported valid on zero Box")
	}

	if b.Format() != 0 {
		t.Errorf("format changed to %s", b.Format())
	}

	if area := b.Area(); area != 0 {
		t.Errorf("expected zero area, got %f", area)
	}

	if got := b.String(); got != "invalid:BoxFormat(0),id:0,score:0" {
		t.Errorf("unexpected string %q", got)
	}

	valid := NewCornerBox(0, 0, 10, 10)

	if iou := valid.IoU(&b); iou != 0 {
		t.Errorf("expected zero IoU with invalid box, got %f", iou)
	}
}

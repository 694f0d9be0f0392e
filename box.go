package perception

import (
	"fmt"
	"math"
)

// BoxFormat defines which coordinate representation of a Box holds valid
// values
type BoxFormat uint8

const (
	// FormatCorner is the (xmin, ymin, xmax, ymax) representation
	FormatCorner BoxFormat = iota + 1
	// FormatOriginExtent is the (top, left, width, height) representation
	FormatOriginExtent
	// FormatBoth means both representations are valid and consistent
	FormatBoth
)

// String returns the short name of the format
func (f BoxFormat) String() string {
	switch f {
	case FormatCorner:
		return "XYXY"
	case FormatOriginExtent:
		return "TLWH"
	case FormatBoth:
		return "BOTH"
	default:
		return fmt.Sprintf("BoxFormat(%d)", uint8(f))
	}
}

// Valid reports if the format is one of the defined formats
func (f BoxFormat) Valid() bool {
	return f >= FormatCorner && f <= FormatBoth
}

// Corner is the (xmin, ymin, xmax, ymax) representation of a bounding box
type Corner struct {
	Xmin float32
	Ymin float32
	Xmax float32
	Ymax float32
}

// OriginExtent is the (top, left, width, height) representation of a
// bounding box where the top left is the origin
type OriginExtent struct {
	Top  float32
	Left float32
	W    float32
	H    float32
}

// Box is a bounding box which holds one of two coordinate representations.
// Detectors emit whichever representation they natively calculate and the
// other is only computed when a consumer asks for it, after which the Box
// carries both.
//
// A Box is not safe for concurrent use as the conversion methods modify it.
type Box struct {
	corner Corner
	origin OriginExtent
	format BoxFormat

	// Score is the confidence of the prediction
	Score float32
	// Class is the label index of the prediction
	Class int
}

// NewCornerBox returns a Box in corner format
func NewCornerBox(xmin, ymin, xmax, ymax float32) Box {
	return Box{
		corner: Corner{Xmin: xmin, Ymin: ymin, Xmax: xmax, Ymax: ymax},
		format: FormatCorner,
	}
}

// NewOriginExtentBox returns a Box in origin+extent format
func NewOriginExtentBox(top, left, w, h float32) Box {
	return Box{
		origin: OriginExtent{Top: top, Left: left, W: w, H: h},
		format: FormatOriginExtent,
	}
}

// NewBox stores the four values into the representation given by format.
// For FormatCorner they are xmin, ymin, xmax, ymax and for FormatOriginExtent
// they are top, left, width, height.  Any other format returns
// ErrInvalidFormat.
func NewBox(a, b, c, d float32, format BoxFormat) (Box, error) {

	switch format {
	case FormatCorner:
		return NewCornerBox(a, b, c, d), nil
	case FormatOriginExtent:
		return NewOriginExtentBox(a, b, c, d), nil
	default:
		return Box{}, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}

// Format returns which representation of the Box is valid
func (b *Box) Format() BoxFormat {
	return b.format
}

// ToOriginExtent calculates the origin+extent representation from the corner
// one.  It does nothing if the origin+extent values are already valid and
// returns ErrInvalidFormat for a Box that was not built by a constructor.
func (b *Box) ToOriginExtent() error {

	switch b.format {
	case FormatOriginExtent, FormatBoth:
		return nil
	case FormatCorner:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, b.format)
	}

	b.origin = OriginExtent{
		Top:  b.corner.Ymin,
		Left: b.corner.Xmin,
		W:    b.corner.Xmax - b.corner.Xmin,
		H:    b.corner.Ymax - b.corner.Ymin,
	}
	b.format = FormatBoth

	return nil
}

// ToCorner calculates the corner representation from the origin+extent one.
// It does nothing if the corner values are already valid and returns
// ErrInvalidFormat for a Box that was not built by a constructor.
func (b *Box) ToCorner() error {

	switch b.format {
	case FormatCorner, FormatBoth:
		return nil
	case FormatOriginExtent:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, b.format)
	}

	b.corner = Corner{
		Xmin: b.origin.Left,
		Ymin: b.origin.Top,
		Xmax: b.origin.Left + b.origin.W,
		Ymax: b.origin.Top + b.origin.H,
	}
	b.format = FormatBoth

	return nil
}

// Corner returns the corner representation.  The boolean is false when the
// Box has not been converted to it yet, in which case the values must not
// be used.
func (b *Box) Corner() (Corner, bool) {
	if b.format == FormatCorner || b.format == FormatBoth {
		return b.corner, true
	}
	return Corner{}, false
}

// OriginExtent returns the origin+extent representation.  The boolean is
// false when the Box has not been converted to it yet.
func (b *Box) OriginExtent() (OriginExtent, bool) {
	if b.format == FormatOriginExtent || b.format == FormatBoth {
		return b.origin, true
	}
	return OriginExtent{}, false
}

// AsCorner converts the Box to corner format if needed and returns it
func (b *Box) AsCorner() (Corner, error) {
	if err := b.ToCorner(); err != nil {
		return Corner{}, err
	}
	return b.corner, nil
}

// AsOriginExtent converts the Box to origin+extent format if needed and
// returns it
func (b *Box) AsOriginExtent() (OriginExtent, error) {
	if err := b.ToOriginExtent(); err != nil {
		return OriginExtent{}, err
	}
	return b.origin, nil
}

// Area returns the area of the Box using whichever representation is valid.
// A Box with an invalid format has no area.
func (b *Box) Area() float32 {
	switch b.format {
	case FormatOriginExtent:
		return b.origin.W * b.origin.H
	case FormatCorner, FormatBoth:
		return (b.corner.Xmax - b.corner.Xmin) * (b.corner.Ymax - b.corner.Ymin)
	default:
		return 0
	}
}

// IoU calculates the Intersection over Union of the Box with another Box.
// Neither Box is modified.  The IoU with a Box of invalid format is 0.
func (b *Box) IoU(other *Box) float32 {

	b0, b1 := *b, *other

	c0, err := b0.AsCorner()

	if err != nil {
		return 0
	}

	c1, err := b1.AsCorner()

	if err != nil {
		return 0
	}

	w := math.Max(0, math.Min(float64(c0.Xmax), float64(c1.Xmax))-math.Max(float64(c0.Xmin), float64(c1.Xmin)))
	h := math.Max(0, math.Min(float64(c0.Ymax), float64(c1.Ymax))-math.Max(float64(c0.Ymin), float64(c1.Ymin)))
	inter := float32(w * h)

	union := b0.Area() + b1.Area() - inter

	if union <= 0 {
		return 0
	}

	return inter / union
}

// String renders the valid fields of the Box for debugging.  Unlike the other
// methods it has a value receiver so Box values satisfy fmt.Stringer.
func (b Box) String() string {
	switch b.format {
	case FormatOriginExtent:
		return fmt.Sprintf("top:%g,left:%g,w:%g,h:%g,id:%d,score:%g",
			b.origin.Top, b.origin.Left, b.origin.W, b.origin.H, b.Class, b.Score)
	case FormatCorner, FormatBoth:
		return fmt.Sprintf("x1:%g,y1:%g,x2:%g,y2:%g,id:%d,score:%g",
			b.corner.Xmin, b.corner.Ymin, b.corner.Xmax, b.corner.Ymax, b.Class, b.Score)
	default:
		return fmt.Sprintf("invalid:%s,id:%d,score:%g", b.format, b.Class, b.Score)
	}
}

package perception

import (
	"fmt"
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// Dilate expands the Box outward by the unclip distance area*ratio/perimeter,
// as done to grow shrunken text or object regions back to their full extent.
// The polygon offset is performed with rounded joins and the bounding box of
// the result is returned in corner format with the same Score and Class.
// The receiver keeps its format.
func (b *Box) Dilate(ratio float64) (Box, error) {

	src := *b
	c, err := src.AsCorner()

	if err != nil {
		return Box{}, err
	}

	w := float64(c.Xmax - c.Xmin)
	h := float64(c.Ymax - c.Ymin)
	perimeter := 2 * (w + h)

	if perimeter <= 0 {
		return Box{}, fmt.Errorf("%w: box %s has no perimeter", ErrEmptyExtent, src)
	}

	distance := w * h * ratio / perimeter

	// convert the box corners to a Clipper Path
	path := clipper.Path{
		&clipper.IntPoint{X: clipper.CInt(math.Round(float64(c.Xmin))), Y: clipper.CInt(math.Round(float64(c.Ymin)))},
		&clipper.IntPoint{X: clipper.CInt(math.Round(float64(c.Xmax))), Y: clipper.CInt(math.Round(float64(c.Ymin)))},
		&clipper.IntPoint{X: clipper.CInt(math.Round(float64(c.Xmax))), Y: clipper.CInt(math.Round(float64(c.Ymax)))},
		&clipper.IntPoint{X: clipper.CInt(math.Round(float64(c.Xmin))), Y: clipper.CInt(math.Round(float64(c.Ymax)))},
	}

	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtRound, clipper.EtClosedPolygon)

	// execute the offset operation
	solution := co.Execute(distance)

	var xs, ys []float32

	for _, sol := range solution {
		for _, pt := range sol {
			xs = append(xs, float32(pt.X))
			ys = append(ys, float32(pt.Y))
		}
	}

	if len(xs) == 0 {
		return Box{}, fmt.Errorf("%w: offset of box %s is empty", ErrEmptyExtent, src)
	}

	out := NewCornerBox(minF32(xs), minF32(ys), maxF32(xs), maxF32(ys))
	out.Score = b.Score
	out.Class = b.Class

	return out, nil
}

// minF32 returns the smallest value of a non empty slice
func minF32(vals []float32) float32 {
	m := vals[0]
	for _, v := range vals[1:] {
		m = min(m, v)
	}
	return m
}

// maxF32 returns the largest value of a non empty slice
func maxF32(vals []float32) float32 {
	m := vals[0]
	for _, v := range vals[1:] {
		m = max(m, v)
	}
	return m
}

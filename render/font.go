package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Alignment of a label relative to the box it describes
type Alignment int

const (
	Left   Alignment = 1
	Center Alignment = 2
	Right  Alignment = 3
)

// Font defines how box labels are rendered.  The Hershey settings are used
// when drawing on a gocv.Mat and RasterFace when drawing on a Go image, the
// color, padding and alignment apply to both.
type Font struct {
	// Face, Scale, Thickness and LineType configure GoCV text rendering
	Face      gocv.HersheyFont
	Scale     float64
	Thickness int
	LineType  gocv.LineType
	// RasterFace is the font for Go images, basicfont.Face7x13 when nil
	RasterFace font.Face
	Color      color.RGBA
	LeftPad    int
	RightPad   int
	TopPad     int
	BottomPad  int
	Alignment  Alignment
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:       gocv.FontHersheySimplex,
		Scale:      0.5,
		Thickness:  1,
		LineType:   gocv.LineAA,
		RasterFace: basicfont.Face7x13,
		Color:      White,
		LeftPad:    4,
		RightPad:   4,
		TopPad:     4,
		BottomPad:  6,
		Alignment:  Left,
	}
}

// cvTextSize measures text as drawn by gocv.PutText
func (f Font) cvTextSize(text string) image.Point {
	return gocv.GetTextSize(text, f.Face, f.Scale, f.Thickness)
}

// rasterFace returns the face used on Go images
func (f Font) rasterFace() font.Face {
	if f.RasterFace == nil {
		return basicfont.Face7x13
	}
	return f.RasterFace
}

// rasterTextSize measures text as drawn by a font.Drawer
func (f Font) rasterTextSize(text string) image.Point {
	face := f.rasterFace()
	return image.Pt(font.MeasureString(face, text).Ceil(), face.Metrics().Ascent.Ceil())
}

// labelPlacement returns the background rectangle of a label sitting on top
// of box and the baseline origin of its text
func (f Font) labelPlacement(box image.Rectangle, textSize image.Point,
	lineThickness int) (image.Rectangle, image.Point) {

	var centerX int

	switch f.Alignment {
	case Center:
		centerX = (box.Min.X + box.Max.X) / 2

	case Right:
		centerX = box.Max.X - (textSize.X / 2) - f.RightPad + (lineThickness / 2)

	case Left:
		fallthrough
	default:
		centerX = box.Min.X + (textSize.X / 2) + f.LeftPad - (lineThickness / 2)
	}

	bg := image.Rect(centerX-textSize.X/2-f.LeftPad,
		box.Min.Y-textSize.Y-f.TopPad-f.BottomPad,
		centerX+textSize.X/2+f.RightPad, box.Min.Y)

	return bg, image.Pt(centerX-textSize.X/2, box.Min.Y-f.BottomPad)
}

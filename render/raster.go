package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/swdee/go-perception"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RasterBoxes draws the bounding box outlines with their class label onto a
// Go image, for use where OpenCV is not available.  Labels that would leave
// the top of the image are placed inside the box.
func RasterBoxes(dst *image.RGBA, boxes []perception.Box, classNames []string,
	lblFont Font) {

	for i, box := range boxes {
		clr := colorFor(i)
		rect, ok := boxRect(box)
		rect = rect.Intersect(dst.Bounds())

		if !ok || rect.Empty() {
			continue
		}

		strokeRect(dst, rect, clr)

		text := fmt.Sprintf("%s %.2f", className(classNames, box.Class), box.Score)
		bg, dot := lblFont.labelPlacement(rect, lblFont.rasterTextSize(text), 1)

		if bg.Min.Y < dst.Bounds().Min.Y {
			shift := image.Pt(0, bg.Dy())
			bg = bg.Add(shift)
			dot = dot.Add(shift)
		}

		draw.Draw(dst, bg, image.NewUniform(clr), image.Point{}, draw.Src)

		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(lblFont.Color),
			Face: lblFont.rasterFace(),
			Dot:  fixed.P(dot.X, dot.Y),
		}
		d.DrawString(text)
	}
}

// strokeRect draws a one pixel outline of rect
func strokeRect(dst *image.RGBA, rect image.Rectangle, clr color.RGBA) {

	for x := rect.Min.X; x < rect.Max.X; x++ {
		dst.SetRGBA(x, rect.Min.Y, clr)
		dst.SetRGBA(x, rect.Max.Y-1, clr)
	}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dst.SetRGBA(rect.Min.X, y, clr)
		dst.SetRGBA(rect.Max.X-1, y, clr)
	}
}

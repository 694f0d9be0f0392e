package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/swdee/go-perception"
	"gocv.io/x/gocv"
)

// boxLabel defines where an object label should be rendered on the source
// image
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// className returns the label name of class, or its number when no name
// is known
func className(classNames []string, class int) string {
	if class >= 0 && class < len(classNames) {
		return classNames[class]
	}
	return fmt.Sprintf("%d", class)
}

// boxRect converts the box to an image rectangle without modifying it.  False
// is returned for a box with an invalid format.
func boxRect(box perception.Box) (image.Rectangle, bool) {

	c, err := box.AsCorner()

	if err != nil {
		return image.Rectangle{}, false
	}

	return image.Rect(int(c.Xmin), int(c.Ymin), int(c.Xmax), int(c.Ymax)), true
}

// newBoxLabel calculates the placement of the label text above rect
func newBoxLabel(rect image.Rectangle, text string, clr color.RGBA,
	font Font, lineThickness int) boxLabel {

	bg, textPos := font.labelPlacement(rect, font.cvTextSize(text), lineThickness)

	return boxLabel{
		rect:    bg,
		clr:     clr,
		text:    text,
		textPos: textPos,
	}
}

// drawLabels draws the box labels so they are the top most layer on the image
func drawLabels(img *gocv.Mat, labels []boxLabel, font Font) {
	for _, l := range labels {
		// draw box text gets written on
		gocv.Rectangle(img, l.rect, l.clr, -1)

		gocv.PutTextWithParams(img, l.text, l.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// Boxes renders the bounding boxes with their class label and score
func Boxes(img *gocv.Mat, boxes []perception.Box, classNames []string,
	font Font, lineThickness int) {

	labels := make([]boxLabel, 0, len(boxes))

	for i, box := range boxes {
		useClr := colorFor(i)
		rect, ok := boxRect(box)

		if !ok {
			continue
		}

		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := fmt.Sprintf("%s %.2f", className(classNames, box.Class), box.Score)
		labels = append(labels, newBoxLabel(rect, text, useClr, font, lineThickness))
	}

	drawLabels(img, labels, font)
}

// Detections renders the detection boxes and a dot on each landmark
func Detections(img *gocv.Mat, dets []perception.Detection, classNames []string,
	font Font, lineThickness int) {

	labels := make([]boxLabel, 0, len(dets))

	for i, det := range dets {
		useClr := colorFor(i)
		rect, _ := boxRect(det.Box())

		gocv.Rectangle(img, rect, useClr, lineThickness)

		for j, lm := range det.Landmarks {
			gocv.Circle(img, image.Pt(int(lm.X), int(lm.Y)), 3, landmarkColor(j), -1)
		}

		text := fmt.Sprintf("%s %.2f", className(classNames, det.Class), det.Score)
		labels = append(labels, newBoxLabel(rect, text, useClr, font, lineThickness))
	}

	drawLabels(img, labels, font)
}

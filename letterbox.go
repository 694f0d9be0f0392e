package perception

import "fmt"

// Letterbox describes how a source image was scaled, keeping its aspect
// ratio, and padded to a model's input size.  Producers use it to map boxes,
// landmarks and keypoints from model input coordinates back to the source
// image.
type Letterbox struct {
	// scale is the factor applied to the source image
	scale float32
	// xPad and yPad are the padding placed left and above the scaled image
	xPad int
	yPad int
}

// NewLetterbox calculates the letterbox scaling of a srcWidth x srcHeight
// image into a destWidth x destHeight model input.  All sizes must be
// positive.
func NewLetterbox(srcWidth, srcHeight, destWidth, destHeight int) (Letterbox, error) {

	if srcWidth <= 0 || srcHeight <= 0 || destWidth <= 0 || destHeight <= 0 {
		return Letterbox{}, fmt.Errorf("%w: letterbox of %dx%d into %dx%d",
			ErrInvalidSize, srcWidth, srcHeight, destWidth, destHeight)
	}

	resizeW := destWidth
	resizeH := destHeight

	scaleW := float32(destWidth) / float32(srcWidth)
	scaleH := float32(destHeight) / float32(srcHeight)
	scale := scaleH

	if scaleW < scaleH {
		scale = scaleW
		resizeH = int(float32(srcHeight) * scale)
	} else {
		resizeW = int(float32(srcWidth) * scale)
	}

	return Letterbox{
		scale: scale,
		xPad:  (destWidth - resizeW) / 2,
		yPad:  (destHeight - resizeH) / 2,
	}, nil
}

// ScaleFactor returns the scale factor used in the letterbox resize
func (l Letterbox) ScaleFactor() float32 {
	return l.scale
}

// XPad returns the x padding used in the letterbox resize
func (l Letterbox) XPad() int {
	return l.xPad
}

// YPad returns the y padding used in the letterbox resize
func (l Letterbox) YPad() int {
	return l.yPad
}

// toSource maps a model input coordinate back to the source image
func (l Letterbox) toSource(x, y float32) (float32, float32) {
	return (x - float32(l.xPad)) / l.scale, (y - float32(l.yPad)) / l.scale
}

// BoxToSource maps a Box from model input to source image coordinates.  The
// returned Box keeps the format of the input.
func (l Letterbox) BoxToSource(b Box) Box {

	out := b

	if c, ok := b.Corner(); ok {
		out.corner.Xmin, out.corner.Ymin = l.toSource(c.Xmin, c.Ymin)
		out.corner.Xmax, out.corner.Ymax = l.toSource(c.Xmax, c.Ymax)
	}

	if o, ok := b.OriginExtent(); ok {
		out.origin.Left, out.origin.Top = l.toSource(o.Left, o.Top)
		out.origin.W = o.W / l.scale
		out.origin.H = o.H / l.scale
	}

	return out
}

// DetectionToSource maps a Detection and its landmarks from model input to
// source image coordinates
func (l Letterbox) DetectionToSource(d Detection) Detection {

	out := d
	out.X1, out.Y1 = l.toSource(d.X1, d.Y1)
	out.X2, out.Y2 = l.toSource(d.X2, d.Y2)

	out.Landmarks = make([]LandmarkPoint, len(d.Landmarks))

	for i, lm := range d.Landmarks {
		out.Landmarks[i].X, out.Landmarks[i].Y = l.toSource(lm.X, lm.Y)
	}

	return out
}

// PoseToSource maps the present keypoints of a pose from model input to
// source image coordinates
func (l Letterbox) PoseToSource(p HumanPose) HumanPose {

	out := p
	out.Keypoints = make([]Keypoint, len(p.Keypoints))

	for i, kp := range p.Keypoints {
		out.Keypoints[i] = kp

		if kp.Present {
			out.Keypoints[i].X, out.Keypoints[i].Y = l.toSource(kp.X, kp.Y)
		}
	}

	return out
}

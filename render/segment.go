package render

import (
	"errors"
	"fmt"

	"github.com/swdee/go-perception"
	"gocv.io/x/gocv"
)

// ErrImageType is returned when drawing onto a Mat that is not a 3 channel
// 8 bit BGR image
var ErrImageType = errors.New("image must be of type CV8UC3")

// InstanceMasks renders the instance segmentation masks as a transparent
// overlay on the image.  Mask pixels above threshold are blended with the
// instance's palette color.  The image must be CV8UC3, the masks must have
// the same size as the image and their arena must not have been released yet.
func InstanceMasks(img *gocv.Mat, segs []perception.InstanceSegmentation,
	threshold, alpha float32) error {

	if img.Type() != gocv.MatTypeCV8UC3 {
		return fmt.Errorf("%w: got type %d", ErrImageType, int(img.Type()))
	}

	// get dimensions
	width := img.Cols()
	height := img.Rows()

	// it is too slow to manipulate pixel by pixel using GoCV due to slowness
	// over CGO.  So we copy the bytes from the source image and manipulate
	// the bytes directly before copying back to a Mat
	imgData := img.ToBytes()

	for i, seg := range segs {

		mw, mh := seg.Mask.Size()

		if mw != width || mh != height {
			return fmt.Errorf("mask %d is %dx%d, image is %dx%d", seg.Index, mw, mh,
				width, height)
		}

		mask, err := seg.Mask.Data()

		if err != nil {
			return fmt.Errorf("error reading mask %d: %w", seg.Index, err)
		}

		clr := colorFor(i)

		for idx, val := range mask {
			if val <= threshold {
				continue
			}

			// calculate position in the byte slice
			pixelPos := idx * 3

			// get original pixel colors directly from the byte slice
			b, g, r := imgData[pixelPos+0], imgData[pixelPos+1], imgData[pixelPos+2]

			// calculate blended colors based on alpha transparency
			imgData[pixelPos+0] = uint8(float32(b)*(1-alpha) + float32(clr.B)*alpha)
			imgData[pixelPos+1] = uint8(float32(g)*(1-alpha) + float32(clr.G)*alpha)
			imgData[pixelPos+2] = uint8(float32(r)*(1-alpha) + float32(clr.R)*alpha)
		}
	}

	// copy back to the original mat
	tmpImg, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, imgData)

	if err != nil {
		return fmt.Errorf("error creating overlay Mat: %w", err)
	}

	defer tmpImg.Close()
	tmpImg.CopyTo(img)

	return nil
}

// Package cvmat converts camera calibration into OpenCV matrices for use with
// GoCV functions such as gocv.Undistort and gocv.ProjectPoints.
package cvmat

import (
	"fmt"

	"github.com/swdee/go-perception/camera"
	"gocv.io/x/gocv"
)

// ToMat returns the 3x3 pinhole camera matrix as a CV_64F Mat.  The caller
// must Close the returned Mat.
func ToMat(p camera.CameraIntrinsicParams) (gocv.Mat, error) {

	if err := p.Validate(); err != nil {
		return gocv.NewMat(), err
	}

	m := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV64F)
	cm := p.ToCameraMatrix()

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.SetDoubleAt(r, c, cm.At(r, c))
		}
	}

	if m.Empty() {
		m.Close()
		return gocv.NewMat(), fmt.Errorf("error creating camera Mat")
	}

	return m, nil
}

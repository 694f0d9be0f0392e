package camera

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidIntrinsics is returned for calibration values that can not
	// describe a pinhole camera
	ErrInvalidIntrinsics = errors.New("invalid camera intrinsics")

	// ErrBehindCamera is returned when projecting a point that is not in
	// front of the camera
	ErrBehindCamera = errors.New("point is behind the camera")
)

// CameraIntrinsicParams are the calibration constants of a pinhole camera
type CameraIntrinsicParams struct {
	// Fx and Fy are the focal lengths in pixels
	Fx float64 `yaml:"fx"`
	Fy float64 `yaml:"fy"`
	// Cx and Cy is the principal point in pixels
	Cx float64 `yaml:"cx"`
	Cy float64 `yaml:"cy"`
	// Scale is the depth scale, the number of depth map units per meter
	Scale float64 `yaml:"scale"`
}

// Point3 is a point in camera space
type Point3 struct {
	X, Y, Z float64
}

// String returns the parameters in printable form
func (p CameraIntrinsicParams) String() string {
	return fmt.Sprintf("fx: %g fy: %g cx: %g cy: %g scale: %g",
		p.Fx, p.Fy, p.Cx, p.Cy, p.Scale)
}

// Validate checks the focal lengths and scale are positive
func (p CameraIntrinsicParams) Validate() error {

	if p.Fx <= 0 || p.Fy <= 0 {
		return fmt.Errorf("%w: focal length fx=%g fy=%g must be positive",
			ErrInvalidIntrinsics, p.Fx, p.Fy)
	}

	if p.Scale <= 0 {
		return fmt.Errorf("%w: scale %g must be positive", ErrInvalidIntrinsics, p.Scale)
	}

	return nil
}

// ToCameraMatrix returns the 3x3 pinhole camera matrix
//
//	[ fx  0  cx ]
//	[  0 fy  cy ]
//	[  0  0   1 ]
func (p CameraIntrinsicParams) ToCameraMatrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		p.Fx, 0, p.Cx,
		0, p.Fy, p.Cy,
		0, 0, 1,
	})
}

// Project maps a point in camera space to pixel coordinates
func (p CameraIntrinsicParams) Project(pt Point3) (float64, float64, error) {

	if pt.Z <= 0 {
		return 0, 0, fmt.Errorf("%w: z=%g", ErrBehindCamera, pt.Z)
	}

	var uvw mat.VecDense
	uvw.MulVec(p.ToCameraMatrix(), mat.NewVecDense(3, []float64{pt.X, pt.Y, pt.Z}))

	return uvw.AtVec(0) / uvw.AtVec(2), uvw.AtVec(1) / uvw.AtVec(2), nil
}

// Unproject maps pixel u, v with the raw depth map value at that pixel back
// to a point in camera space, using Scale to convert depth units to meters
func (p CameraIntrinsicParams) Unproject(u, v, depth float64) Point3 {

	z := depth / p.Scale

	return Point3{
		X: (u - p.Cx) * z / p.Fx,
		Y: (v - p.Cy) * z / p.Fy,
		Z: z,
	}
}

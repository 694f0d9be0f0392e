package cvmat

import (
	"testing"

	"github.com/swdee/go-perception/camera"
)

func TestToMat(t *testing.T) {

	p := camera.CameraIntrinsicParams{Fx: 100, Fy: 100, Cx: 320, Cy: 240, Scale: 1}

	m, err := ToMat(p)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer m.Close()

	if m.Rows() != 3 || m.Cols() != 3 {
		t.Fatalf("expected 3x3 Mat, got %dx%d", m.Rows(), m.Cols())
	}

	expected := [3][3]float64{
		{100, 0, 320},
		{0, 100, 240},
		{0, 0, 1},
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if got := m.GetDoubleAt(r, c); got != expected[r][c] {
				t.Errorf("at (%d,%d) expected %f, got %f", r, c, expected[r][c], got)
			}
		}
	}
}

func TestToMatInvalid(t *testing.T) {

	m, err := ToMat(camera.CameraIntrinsicParams{})
	defer m.Close()

	if err == nil {
		t.Errorf("expected error for zero intrinsics")
	}
}

package render

import (
	"testing"

	"github.com/swdee/go-perception"
)

// bodyPose returns a 17 keypoint pose with the right knee (index 13) at
// (150,150) joined to the right hip (index 11) at (50,150) and the right
// ankle (index 15) absent at (190,150).  Other keypoints sit along y=20.
func bodyPose() perception.HumanPose {

	kps := make([]perception.Keypoint, keyPointsTotal)

	for i := range kps {
		kps[i] = perception.Point(float32(10+4*i), 20)
	}

	kps[11] = perception.Point(50, 150)
	kps[13] = perception.Point(150, 150)
	kps[15] = perception.Keypoint{X: 190, Y: 150}

	return perception.NewHumanPose(kps, 0.9)
}

func TestPoseKeyPointsSkipsAbsent(t *testing.T) {

	img := blankImage(200, 200)
	defer img.Close()

	PoseKeyPoints(&img, []perception.HumanPose{bodyPose()}, 2)

	// limb between two present keypoints
	if got := pixelAt(img, 100, 150); got != limbColors[1] {
		t.Errorf("expected hip to knee limb, got %v", got)
	}

	// knee to absent ankle is not drawn
	if got := pixelAt(img, 170, 150); got != black {
		t.Errorf("expected no limb to absent keypoint, got %v", got)
	}

	// and neither is the absent joint
	if got := pixelAt(img, 190, 150); got != black {
		t.Errorf("expected no joint at absent keypoint, got %v", got)
	}

	if got := pixelAt(img, 150, 150); got != keyPointColors[13] {
		t.Errorf("expected knee joint, got %v", got)
	}
}

func TestPoseKeyPointsFace(t *testing.T) {

	img := blankImage(100, 100)
	defer img.Close()

	face := perception.NewHumanPose([]perception.Keypoint{
		perception.Point(20, 20),
		perception.Point(60, 20),
		{X: 40, Y: 40},
		perception.Point(25, 70),
		perception.Point(55, 70),
	}, 0.8)
	face.IsFace = true

	PoseKeyPoints(&img, []perception.HumanPose{face}, 2)

	for i, kp := range face.Keypoints {
		got := pixelAt(img, int(kp.X), int(kp.Y))

		if kp.Present && got != landmarkColor(i) {
			t.Errorf("landmark %d: expected dot %v, got %v", i, landmarkColor(i), got)
		}

		if !kp.Present && got != black {
			t.Errorf("landmark %d: expected absent point not drawn, got %v", i, got)
		}
	}

	// dots only, no skeleton lines between them
	if got := pixelAt(img, 40, 20); got != black {
		t.Errorf("expected no line between face points, got %v", got)
	}
}

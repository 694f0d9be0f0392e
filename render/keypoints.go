package render

import (
	"image"

	"github.com/swdee/go-perception"
	"gocv.io/x/gocv"
)

/* skeleton keypoints
0: Nose
1: Left Eye
2: Right Eye
3: Left Ear
4: Right Ear
5: Left Shoulder
6: Right Shoulder
7: Left Elbow
8: Right Elbow
9: Left Wrist
10: Right Wrist
11: Left Hip
12: Right Hip
13: Left Knee
14: Right Knee
15: Left Ankle
16: Right Ankle
*/

var (
	// skeleton defines the pose skeleton points to draw lines between.  The numbers
	// are paired, so (16,14) means draw line from right ankle to right knee.
	skeleton = [38]int{16, 14, 14, 12, 17, 15, 15, 13, 12, 13, 6, 12, 7, 13, 6, 7, 6, 8,
		7, 9, 8, 10, 9, 11, 2, 3, 1, 2, 1, 3, 2, 4, 3, 5, 4, 6, 5, 7}
	// keyPointsTotal is the number of keypoints in a skeleton
	keyPointsTotal = 17
)

// PoseKeyPoints renders the keypoints of the poses.  Body poses with the 17
// COCO keypoints get their skeleton drawn, limbs are skipped when either end
// was not detected.  Face poses are drawn as landmark dots.
func PoseKeyPoints(img *gocv.Mat, poses []perception.HumanPose,
	lineThickness int) {

	for _, pose := range poses {

		kps := pose.Keypoints

		if pose.IsFace || len(kps) != keyPointsTotal {
			for j, kp := range kps {
				if kp.Present {
					gocv.Circle(img, image.Pt(int(kp.X), int(kp.Y)), 3, landmarkColor(j), -1)
				}
			}
			continue
		}

		// draw skeleton lines
		for j := 0; j < len(skeleton)/2; j++ {
			p1 := kps[skeleton[2*j]-1]
			p2 := kps[skeleton[2*j+1]-1]

			if !p1.Present || !p2.Present {
				continue
			}

			gocv.Line(img, image.Pt(int(p1.X), int(p1.Y)), image.Pt(int(p2.X), int(p2.Y)),
				limbColors[j], lineThickness)
		}

		// draw circles at skeleton joints
		for j := 0; j < keyPointsTotal; j++ {
			if !kps[j].Present {
				continue
			}

			gocv.Circle(img, image.Pt(int(kps[j].X), int(kps[j].Y)),
				3, keyPointColors[j], -1)
		}
	}
}

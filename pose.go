package perception

// SentinelAbsent is the coordinate value some pose estimators place in both
// x and y of a keypoint they did not detect
const SentinelAbsent float32 = -1

// UntrackedPoseID is the PoseID of a HumanPose no tracker has assigned yet
const UntrackedPoseID = -1

// Keypoint is a single pose keypoint.  The zero value is an absent keypoint.
type Keypoint struct {
	X     float32
	Y     float32
	Score float32
	// Present is false when the estimator did not detect the keypoint, in
	// which case X and Y carry no meaning
	Present bool
}

// Point returns a present Keypoint at x, y
func Point(x, y float32) Keypoint {
	return Keypoint{X: x, Y: y, Present: true}
}

// AbsentKeypoint returns a Keypoint marking an undetected body part
func AbsentKeypoint() Keypoint {
	return Keypoint{}
}

// KeypointFromSentinel converts the coordinates emitted by an estimator using
// (-1,-1) for undetected points into a Keypoint
func KeypointFromSentinel(x, y float32) Keypoint {
	if x == SentinelAbsent && y == SentinelAbsent {
		return AbsentKeypoint()
	}
	return Point(x, y)
}

// KeypointsFromSentinel converts interleaved x,y coordinates using the (-1,-1)
// absent convention into keypoints.  A trailing odd value is ignored.
func KeypointsFromSentinel(xy []float32) []Keypoint {

	kps := make([]Keypoint, 0, len(xy)/2)

	for i := 0; i+1 < len(xy); i += 2 {
		kps = append(kps, KeypointFromSentinel(xy[i], xy[i+1]))
	}

	return kps
}

// HumanPose is the result of a pose estimation for a single person or face
type HumanPose struct {
	// Keypoints are the body or face keypoints in model order
	Keypoints []Keypoint
	// Score is the confidence score of the pose
	Score float32
	// PoseType is the class of the pose
	PoseType int
	// PoseID identifies the same pose across video frames.  It is set by a
	// tracker and is UntrackedPoseID until then.
	PoseID int
	// IsFace is true when the keypoints are face landmarks
	IsFace bool
}

// NewHumanPose returns an untracked HumanPose
func NewHumanPose(keypoints []Keypoint, score float32) HumanPose {
	return HumanPose{
		Keypoints: keypoints,
		Score:     score,
		PoseID:    UntrackedPoseID,
	}
}

// SetPoseID assigns the tracking id of the pose
func (p *HumanPose) SetPoseID(id int) {
	p.PoseID = id
}

// Tracked reports if a tracker has assigned an id to the pose
func (p *HumanPose) Tracked() bool {
	return p.PoseID != UntrackedPoseID
}

// PresentCount returns the number of detected keypoints
func (p *HumanPose) PresentCount() int {
	n := 0
	for _, kp := range p.Keypoints {
		if kp.Present {
			n++
		}
	}
	return n
}

// ToBox returns the corner format Box tightly bounding all present keypoints.
// The Box takes the pose Score and its PoseType as Class.  ErrEmptyExtent is
// returned when no keypoint is present.
func (p *HumanPose) ToBox() (Box, error) {

	var xmin, ymin, xmax, ymax float32
	found := false

	for _, kp := range p.Keypoints {
		// don't count absent points
		if !kp.Present {
			continue
		}

		if !found {
			xmin, xmax = kp.X, kp.X
			ymin, ymax = kp.Y, kp.Y
			found = true
			continue
		}

		xmin = min(xmin, kp.X)
		xmax = max(xmax, kp.X)
		ymin = min(ymin, kp.Y)
		ymax = max(ymax, kp.Y)
	}

	if !found {
		return Box{}, ErrEmptyExtent
	}

	box := NewCornerBox(xmin, ymin, xmax, ymax)
	box.Score = p.Score
	box.Class = p.PoseType

	return box, nil
}

package tracker

import (
	"sync"

	"github.com/swdee/go-perception"
)

// Point represents the x,y coordinates of the center of a tracked pose's
// bounding box
type Point struct {
	X, Y int
}

// Track represents a track history
type Track struct {
	points []Point
}

// Trail is the struct to keep a history of tracked pose positions used for
// drawing a trail
type Trail struct {
	// size is the maximum number of most recent points to keep in history
	size int
	// history of tracked points by PoseID
	history map[int]*Track
	sync.Mutex
}

// NewTrail returns a new trail history track instance.  Size is the number
// of most recent points to keep and specifies the maximum length of the trail
// to maintain
func NewTrail(size int) *Trail {
	return &Trail{
		size:    size,
		history: make(map[int]*Track),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.history = make(map[int]*Track)
}

// Add records the center of the pose's bounding box under its PoseID.  Poses
// that are untracked or have no present keypoints are ignored and false is
// returned.
func (t *Trail) Add(pose perception.HumanPose) bool {

	if !pose.Tracked() {
		return false
	}

	box, err := pose.ToBox()

	if err != nil {
		return false
	}

	o, err := box.AsOriginExtent()

	if err != nil {
		return false
	}

	t.Lock()
	defer t.Unlock()

	// init map if no history exists yet for pose id
	track, exists := t.history[pose.PoseID]

	if !exists {
		track = &Track{}
		t.history[pose.PoseID] = track
	}

	track.points = append(track.points, Point{
		X: int(o.Left + o.W/2),
		Y: int(o.Top + o.H/2),
	})

	// check if history is exceeded and drop oldest point
	if len(track.points) > t.size {
		track.points = track.points[1:]
	}

	return true
}

// GetPoints gets the point history for a specific pose id
func (t *Trail) GetPoints(id int) []Point {
	t.Lock()
	defer t.Unlock()

	if track, exists := t.history[id]; exists {
		return track.points
	}

	// no history yet
	return nil
}

package tracker

import (
	"errors"
	"fmt"
	"sort"

	"github.com/swdee/go-perception"
)

// poseTrack is the last known state of a tracked pose
type poseTrack struct {
	id int
	// box is the bounding box of the pose when last seen
	box perception.Box
	// lastFrame is the frame ID the pose was last matched in
	lastFrame int
}

// candidate is a possible association between a track and a pose
type candidate struct {
	track int
	pose  int
	iou   float32
}

// PoseTracker follows human poses across video frames by the overlap of the
// boxes bounding their keypoints and assigns each a stable PoseID
type PoseTracker struct {
	// iouThresh is the minimum IoU between a track and a pose to associate them
	iouThresh float32
	// maxTimeLost is the number of frames a track is kept without a match
	maxTimeLost int
	// Current frame ID
	frameID int
	idGen   *IDGenerator
	tracks  []*poseTrack
}

// NewPoseTracker returns a PoseTracker associating poses with an IoU of at
// least iouThresh and forgetting tracks unmatched for more than maxTimeLost
// frames
func NewPoseTracker(iouThresh float32, maxTimeLost int) *PoseTracker {
	return &PoseTracker{
		iouThresh:   iouThresh,
		maxTimeLost: maxTimeLost,
		idGen:       NewIDGenerator(),
	}
}

// Reset clears all tracks and restarts ID numbering
func (pt *PoseTracker) Reset() {
	pt.frameID = 0
	pt.idGen.Reset()
	pt.tracks = nil
}

// Tracks returns the number of tracks currently followed
func (pt *PoseTracker) Tracks() int {
	return len(pt.tracks)
}

// Update sets the PoseID of the poses in the next frame and returns them.
// Poses without any present keypoint are left untracked.
func (pt *PoseTracker) Update(poses []perception.HumanPose) ([]perception.HumanPose, error) {

	pt.frameID++

	boxes := make([]perception.Box, len(poses))
	valid := make([]bool, len(poses))

	for i := range poses {
		poses[i].SetPoseID(perception.UntrackedPoseID)

		box, err := poses[i].ToBox()

		if errors.Is(err, perception.ErrEmptyExtent) {
			continue
		} else if err != nil {
			return nil, fmt.Errorf("error deriving box of pose %d: %w", i, err)
		}

		boxes[i] = box
		valid[i] = true
	}

	// associate by highest IoU first
	var cands []candidate

	for ti, track := range pt.tracks {
		for pi := range poses {
			if !valid[pi] {
				continue
			}

			iou := track.box.IoU(&boxes[pi])

			if iou > 0 && iou >= pt.iouThresh {
				cands = append(cands, candidate{track: ti, pose: pi, iou: iou})
			}
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].iou > cands[j].iou
	})

	trackUsed := make([]bool, len(pt.tracks))
	poseUsed := make([]bool, len(poses))

	for _, c := range cands {
		if trackUsed[c.track] || poseUsed[c.pose] {
			continue
		}

		track := pt.tracks[c.track]
		track.box = boxes[c.pose]
		track.lastFrame = pt.frameID
		poses[c.pose].SetPoseID(track.id)

		trackUsed[c.track] = true
		poseUsed[c.pose] = true
	}

	// drop tracks lost for too long
	kept := pt.tracks[:0]

	for _, track := range pt.tracks {
		if pt.frameID-track.lastFrame <= pt.maxTimeLost {
			kept = append(kept, track)
		}
	}

	pt.tracks = kept

	// start new tracks for unmatched poses
	for pi := range poses {
		if !valid[pi] || poseUsed[pi] {
			continue
		}

		track := &poseTrack{
			id:        pt.idGen.Next(),
			box:       boxes[pi],
			lastFrame: pt.frameID,
		}

		pt.tracks = append(pt.tracks, track)
		poses[pi].SetPoseID(track.id)
	}

	return poses, nil
}

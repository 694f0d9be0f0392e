package tracker

import "sync/atomic"

// IDGenerator hands out PoseID values for new tracks.  IDs start at 1 so they
// never collide with perception.UntrackedPoseID.  It is safe for concurrent
// use.
type IDGenerator struct {
	last atomic.Int64
}

// NewIDGenerator returns a generator whose first ID is 1
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns an ID not issued since the last Reset
func (g *IDGenerator) Next() int {
	return int(g.last.Add(1))
}

// Last returns the most recently issued ID, or 0 when none was issued
func (g *IDGenerator) Last() int {
	return int(g.last.Load())
}

// Reset restarts numbering at 1
func (g *IDGenerator) Reset() {
	g.last.Store(0)
}

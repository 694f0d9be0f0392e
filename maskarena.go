package perception

import (
	"fmt"
	"sync"
)

// MaskArena holds the segment mask memory of a single frame.  Masks are
// handed out as MaskView's and recycled through a sync.Pool once the frame
// is released, so consecutive frames do not allocate new masks.
//
// All consumers of a frame's InstanceSegmentation results must be finished
// before Release is called, any MaskView read afterwards returns
// ErrDanglingMask.
type MaskArena struct {
	mu     sync.Mutex
	pool   sync.Pool
	width  int
	height int
	// gen is incremented on every Release so views from a previous frame
	// can be detected
	gen    uint64
	masks  [][]float32
	closed bool
}

// NewMaskArena returns an arena producing masks of width x height
func NewMaskArena(width, height int) (*MaskArena, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: mask %dx%d", ErrInvalidSize, width, height)
	}

	a := &MaskArena{
		width:  width,
		height: height,
	}

	size := width * height

	a.pool.New = func() any {
		return make([]float32, size)
	}

	return a, nil
}

// Size returns the width and height of the masks in the arena
func (a *MaskArena) Size() (int, int) {
	return a.width, a.height
}

// Len returns the number of masks allocated in the current frame
func (a *MaskArena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.masks)
}

// Alloc returns a view to a new zeroed mask for the current frame
func (a *MaskArena) Alloc() (MaskView, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return MaskView{}, ErrArenaClosed
	}

	buf := a.pool.Get().([]float32)

	// zero out the buffer as it may come from a previous frame
	for i := range buf {
		buf[i] = 0
	}

	a.masks = append(a.masks, buf)

	return MaskView{
		arena: a,
		gen:   a.gen,
		idx:   len(a.masks) - 1,
	}, nil
}

// Release returns all masks of the current frame to the pool and
// invalidates every MaskView issued for it
func (a *MaskArena) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, buf := range a.masks {
		a.pool.Put(buf)
	}

	a.masks = nil
	a.gen++
}

// Close releases the arena, after which no more masks can be allocated
func (a *MaskArena) Close() {
	a.Release()

	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
}

// data returns the mask buffer for a view if it is still live
func (a *MaskArena) data(gen uint64, idx int) ([]float32, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.gen || idx >= len(a.masks) {
		return nil, fmt.Errorf("%w: mask %d of generation %d, arena at generation %d",
			ErrDanglingMask, idx, gen, a.gen)
	}

	return a.masks[idx], nil
}

// MaskView is a borrowed view of a single mask held in a MaskArena
type MaskView struct {
	arena *MaskArena
	gen   uint64
	idx   int
}

// Index returns the position of the mask in the arena
func (v MaskView) Index() int {
	return v.idx
}

// Size returns the width and height of the mask
func (v MaskView) Size() (int, int) {
	if v.arena == nil {
		return 0, 0
	}
	return v.arena.Size()
}

// Data returns the mask values in row major order.  The returned slice is
// owned by the arena and must not be retained past its Release.
func (v MaskView) Data() ([]float32, error) {
	if v.arena == nil {
		return nil, fmt.Errorf("%w: view has no arena", ErrDanglingMask)
	}
	return v.arena.data(v.gen, v.idx)
}

// At returns the mask value at pixel x, y
func (v MaskView) At(x, y int) (float32, error) {

	buf, err := v.Data()

	if err != nil {
		return 0, err
	}

	w, h := v.Size()

	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, fmt.Errorf("pixel (%d,%d) outside mask of %dx%d", x, y, w, h)
	}

	return buf[y*w+x], nil
}

// Binary returns a copy of the mask where every value above threshold is
// set to 1 and all others to 0
func (v MaskView) Binary(threshold float32) ([]uint8, error) {

	buf, err := v.Data()

	if err != nil {
		return nil, err
	}

	out := make([]uint8, len(buf))

	for i, val := range buf {
		if val > threshold {
			out[i] = 1
		}
	}

	return out, nil
}

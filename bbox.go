package perception

// Bbox is a bounding box in corner format as emitted directly by a detector
type Bbox struct {
	Xmin float32
	Ymin float32
	Xmax float32
	Ymax float32
	// Score is the confidence score of the object detected
	Score float32
	// Class is the label index of the object detected
	Class int
}

// Box returns the Bbox as a corner format Box
func (b Bbox) Box() Box {
	box := NewCornerBox(b.Xmin, b.Ymin, b.Xmax, b.Ymax)
	box.Score = b.Score
	box.Class = b.Class
	return box
}

// Area returns the area of the bounding box
func (b Bbox) Area() float32 {
	return (b.Xmax - b.Xmin) * (b.Ymax - b.Ymin)
}

// InstanceSegmentation is a detected object with a per pixel mask.  The mask
// memory belongs to the MaskArena of the frame, the record only holds a view
// into it.
type InstanceSegmentation struct {
	Bbox
	// Mask is the view onto the object's mask in the arena
	Mask MaskView
	// Index is the position of the mask in the arena's memory
	Index int
}

// NewInstanceSegmentation returns an InstanceSegmentation for the given box
// and mask view
func NewInstanceSegmentation(box Bbox, mask MaskView) InstanceSegmentation {
	return InstanceSegmentation{
		Bbox:  box,
		Mask:  mask,
		Index: mask.Index(),
	}
}

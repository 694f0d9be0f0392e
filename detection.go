package perception

// LandmarkPoint is a 2D point of a detected landmark
type LandmarkPoint struct {
	X float32
	Y float32
}

// Detection is a bounding box in corner format with an ordered set of
// landmark points, such as a face detection with its eye, nose and mouth
// positions.  The number of landmarks depends on the detector.
type Detection struct {
	X1 float32
	Y1 float32
	X2 float32
	Y2 float32
	// Landmarks are the detected landmark points in detector order
	Landmarks []LandmarkPoint
	// Class is the label index of the object detected
	Class int
	// Score is the confidence score of the object detected
	Score float32
}

// Box returns the bounding box of the detection in corner format
func (d Detection) Box() Box {
	box := NewCornerBox(d.X1, d.Y1, d.X2, d.Y2)
	box.Score = d.Score
	box.Class = d.Class
	return box
}

// Bbox returns the bounding box of the detection without its landmarks
func (d Detection) Bbox() Bbox {
	return Bbox{
		Xmin:  d.X1,
		Ymin:  d.Y1,
		Xmax:  d.X2,
		Ymax:  d.Y2,
		Score: d.Score,
		Class: d.Class,
	}
}

// Landmark returns the i'th landmark, false if the detector did not produce
// that many
func (d Detection) Landmark(i int) (LandmarkPoint, bool) {
	if i < 0 || i >= len(d.Landmarks) {
		return LandmarkPoint{}, false
	}
	return d.Landmarks[i], true
}

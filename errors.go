package perception

import "errors"

var (
	// ErrInvalidFormat is returned when a Box is constructed with a format
	// outside of FormatCorner and FormatOriginExtent
	ErrInvalidFormat = errors.New("invalid box format")

	// ErrEmptyExtent is returned when a bounding region is requested from a
	// set of points that contains no present point
	ErrEmptyExtent = errors.New("no points to compute extent from")

	// ErrDanglingMask is returned when a MaskView is read after the
	// MaskArena it was issued from has been released
	ErrDanglingMask = errors.New("mask view used after its arena was released")

	// ErrInvalidSize is returned when an image or mask size is not positive
	ErrInvalidSize = errors.New("invalid size")

	// ErrArenaClosed is returned when allocating from a closed MaskArena
	ErrArenaClosed = errors.New("mask arena is closed")
)

package colorlab

import "errors"

var (
	// ErrDecode reports that the raster collaborator could not decode the input.
	ErrDecode = errors.New("image decode failed")

	// ErrEmptyImage reports that subsampling produced zero usable pixels.
	ErrEmptyImage = errors.New("no usable pixel samples")

	// ErrConfig reports invalid tunables, detected at construction time.
	ErrConfig = errors.New("invalid analyzer configuration")
)

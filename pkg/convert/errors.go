package convert

import (
	"errors"
)

var (
	// ErrDecode marks input that could not be parsed as a supported image.
	ErrDecode = errors.New("image not decodable")
	// ErrBadDimensions marks target sizes that are not positive integers.
	ErrBadDimensions = errors.New("invalid target dimensions")
	// ErrNoImage rejects operations that need a loaded source.
	ErrNoImage = errors.New("no image loaded")
	// ErrNotResized rejects encoding before a resize produced a raster.
	ErrNotResized = errors.New("nothing resized to encode")
)

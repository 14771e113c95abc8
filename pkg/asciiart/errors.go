package asciiart

import "errors"

var (
	// ErrUnsupportedFormat is returned when a pixel buffer has a bit depth other than 8, 24 or 32.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrInvalidCellSize is returned when a character cell is not at least 1x1 pixels.
	ErrInvalidCellSize = errors.New("invalid character cell size")

	// ErrEmptyBlock is returned when a block to be averaged contains no pixels.
	ErrEmptyBlock = errors.New("block contains no pixels")

	// ErrInvalidDimensions is returned when an image is not at least 1x1 pixels.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrShortBuffer is returned when a pixel buffer holds fewer bytes than its dimensions and stride require.
	ErrShortBuffer = errors.New("pixel buffer too short")
)

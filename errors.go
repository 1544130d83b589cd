package pix

import "errors"

// Sentinel errors for raster construction and access.
var (
	// ErrOutOfBounds is returned by indexed pixel access beyond the
	// raster dimensions. Access is never silently clamped.
	ErrOutOfBounds = errors.New("pix: pixel coordinates out of bounds")

	// ErrSizeOverflow is returned when requested raster dimensions are
	// negative or would overflow addressable storage.
	ErrSizeOverflow = errors.New("pix: raster dimensions exceed addressable size")

	// ErrBufferSize is returned when a caller-provided buffer does not
	// match width * height * bytes-per-pixel for the format.
	ErrBufferSize = errors.New("pix: buffer length does not match raster size")
)

// FormatMismatchError is returned when an operation requires a specific
// alpha or gamma mode and receives a raster that does not satisfy it.
// The check happens before any mutation.
type FormatMismatchError struct {
	Got  string
	Want string
}

func (e *FormatMismatchError) Error() string {
	return "pix: format mismatch: got " + e.Got + ", want " + e.Want
}

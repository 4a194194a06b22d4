package cobs

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is the error that is returned when the encoded input ends
	// before its last run is complete, or before the terminator.  (This also
	// happens when you start decoding in the middle of a frame.)
	ErrTruncated = errors.New("cobs: input truncated")

	// ErrFrameTooLarge is the error that is returned by a Reader when a
	// frame decodes to more than the configured maximum length.
	ErrFrameTooLarge = errors.New("cobs: frame exceeds maximum length")
)

// FrameError says which frame of a stream failed to decode.
type FrameError struct {
	Frame  int   // Index of the frame in the stream, counting from 0
	Offset int64 // Byte offset of the first byte of the frame
	Err    error // ErrTruncated or ErrFrameTooLarge
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%v (frame %d at offset %d)", e.Err, e.Frame, e.Offset)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

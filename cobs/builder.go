package cobs

import (
	"bytes"
)

// FrameBuilder makes it easier to build up the content of individual frames,
// which are then written into a buffer using the COBS encoding.  To build up
// the content of an individual frame, just use the FrameBuilder as a
// bytes.Buffer.  Once a frame is done, call FinishFrame.  Once you are done
// with all frames, call Encode to get the encoded representation of
// everything.
type FrameBuilder struct {
	bytes.Buffer
	start        int
	frameIndices []index
}

type index struct {
	start, end int
}

// FinishFrame indicates that you have finished constructing an individual
// frame.  We don't actually encode the frame until you call Encode, when we
// encode _all_ of the frames that you add to the builder.
func (fb *FrameBuilder) FinishFrame() {
	end := fb.Len()
	fb.frameIndices = append(fb.frameIndices, index{fb.start, end})
	fb.start = end
}

// Frames returns the number of finished frames.
func (fb *FrameBuilder) Frames() int {
	return len(fb.frameIndices)
}

// Encode encodes all of the finished frames in this builder into an output
// buffer, each one followed by its terminator.  Content written since the last
// FinishFrame is not included.
func (fb *FrameBuilder) Encode(dest *bytes.Buffer) {
	frames := fb.Bytes()
	for _, index := range fb.frameIndices {
		frame := frames[index.start:index.end]
		dest.Grow(MaxEncodedLen(len(frame)))
		dest.Write(AppendEncode(dest.AvailableBuffer(), frame))
	}
}

// Reset discards all frames, finished or not.
func (fb *FrameBuilder) Reset() {
	fb.Buffer.Reset()
	fb.start = 0
	fb.frameIndices = fb.frameIndices[:0]
}

package cobs

import (
	"io"
)

// Writer writes COBS frames to an io.Writer.  Each frame is encoded into a
// reusable scratch buffer and handed to the underlying writer in a single
// Write call.  Writes are unbuffered; wrap w in a bufio.Writer if you want
// several frames per system call.
type Writer struct {
	w       io.Writer
	scratch []byte
	frames  int
}

// NewWriter returns a Writer that writes frames to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFrame encodes p and writes it, terminator included, as one frame.
func (w *Writer) WriteFrame(p []byte) error {
	w.scratch = AppendEncode(w.scratch[:0], p)
	if _, err := w.w.Write(w.scratch); err != nil {
		return err
	}
	w.frames++
	return nil
}

// Frames returns the number of frames written successfully.
func (w *Writer) Frames() int {
	return w.frames
}

// WriteFrameTo encodes p and writes it to w one byte at a time, without any
// intermediate buffer.
func WriteFrameTo(w io.ByteWriter, p []byte) error {
	for b := range EncodeIter(p) {
		if err := w.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// Reader reads COBS frames from an io.ByteReader, decoding them a byte at a
// time as they arrive.
//
// io.ByteReader is implemented by *bufio.Reader and *bytes.Reader.  For
// network streams or serial ports, wrap your io.Reader in a bufio.Reader:
//
//	r := cobs.NewReader(bufio.NewReader(port))
//
// A Reader recovers from bad frames: after a frame is reported as truncated
// (because a sentinel arrived too early) or too large, the next ReadFrame
// starts at the following frame.  A read error other than io.EOF in the middle
// of a frame is returned as is; the rest of that frame is then skipped, and the
// next ReadFrame reports it as truncated.
type Reader struct {
	r         io.ByteReader
	dec       Decoder
	maxLength int
	offset    int64
	frames    int
	// Offset of the first byte of the current frame.
	start int64
	// When set, the rest of the current frame is skipped and then reported
	// with this error.
	skip error
}

// NewReader creates a new frame reader.  Optional configuration can be
// provided via Option functions.
func NewReader(r io.ByteReader, opts ...Option) *Reader {
	cfg := &config{
		maxLength: defaultMaxLength,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Reader{
		r:         r,
		maxLength: cfg.maxLength,
	}
}

// ReadFrame reads and decodes the next frame.  Sentinels between frames are
// skipped.  It returns io.EOF if the stream ends cleanly between frames.
// Frames that can't be decoded are reported as a *FrameError wrapping
// ErrTruncated or ErrFrameTooLarge.
func (r *Reader) ReadFrame() ([]byte, error) {
	var msg []byte
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				if r.dec.InFrame() {
					r.dec.Reset()
					r.skip = ErrTruncated
				}
				return nil, err
			}
			switch {
			case r.skip != nil:
				return nil, r.fail(r.skip)
			case r.dec.InFrame():
				r.dec.Reset()
				return nil, r.fail(ErrTruncated)
			default:
				return nil, io.EOF
			}
		}
		r.offset++

		if r.skip != nil {
			if b == Sentinel {
				return nil, r.fail(r.skip)
			}
			continue
		}
		if !r.dec.InFrame() {
			if b == Sentinel {
				continue
			}
			r.start = r.offset - 1
		}

		out, status, err := r.dec.Advance(b)
		if err != nil {
			return nil, r.fail(err)
		}
		switch status {
		case Append:
			if r.maxLength > 0 && len(msg) >= r.maxLength {
				r.dec.Reset()
				r.skip = ErrFrameTooLarge
				continue
			}
			msg = append(msg, out)
		case Done:
			r.frames++
			if msg == nil {
				msg = []byte{}
			}
			return msg, nil
		}
	}
}

// Frames returns the number of frames read so far, good or bad.
func (r *Reader) Frames() int {
	return r.frames
}

func (r *Reader) fail(err error) error {
	fe := &FrameError{Frame: r.frames, Offset: r.start, Err: err}
	r.frames++
	r.skip = nil
	return fe
}

package cobs

// DecodeStatus says what a Decoder did with the byte it was just given.
type DecodeStatus uint8

const (
	// Pending means the byte was consumed but there is no decoded byte yet.
	Pending DecodeStatus = iota
	// Append means a decoded byte is available.
	Append
	// Done means the terminator was seen and the message is complete.
	Done
)

func (s DecodeStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Append:
		return "Append"
	case Done:
		return "Done"
	default:
		return "DecodeStatus(?)"
	}
}

// Decoder decodes a message one encoded byte at a time, without holding on to
// any of it.  This suits bytes that arrive one at a time, e.g. from a serial
// interrupt handler.  The zero value is ready to decode a message.
//
// A Decoder can't tell a run that is still arriving from one that the sender
// abandoned; if the sender stops mid-run, Advance just never returns Done.  Use
// your own deadline if that matters.
type Decoder struct {
	// Literal bytes still to come in the current run.
	remaining int
	// The previous run was shorter than MaxRun, so unless the frame ends here
	// it was followed by a sentinel.
	pendingZero bool
	// At least one overhead byte of the current message has been seen.
	started bool
}

// Advance feeds one encoded byte to the decoder.  When status is Append, out
// is the next decoded byte.  After Done, the decoder is ready for the next
// message.
//
// A sentinel that arrives while a run is incomplete means that the frame was
// cut short.  Advance then returns ErrTruncated and resets, so that the
// following byte is treated as the start of a new frame.
func (d *Decoder) Advance(in byte) (out byte, status DecodeStatus, err error) {
	if in == Sentinel {
		truncated := d.remaining != 0
		d.Reset()
		if truncated {
			return 0, Pending, ErrTruncated
		}
		return 0, Done, nil
	}

	if d.remaining > 0 {
		d.remaining--
		return in, Append, nil
	}

	n, _ := decodeLen(in)
	d.started = true
	d.remaining = n
	zero := d.pendingZero
	d.pendingZero = n != MaxRun
	if zero {
		return Sentinel, Append, nil
	}
	return 0, Pending, nil
}

// Reset discards any partially decoded message.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

// InFrame reports whether the decoder has consumed part of a message that it
// hasn't finished yet.
func (d *Decoder) InFrame() bool {
	return d.started
}

package cobs

import "iter"

type encodeState uint8

const (
	// Next byte is the overhead byte of a new run.
	encodeBegin encodeState = iota
	// Next byte is a literal from the current run.
	encodeRun
	// Next byte is the terminator.
	encodeEnd
	// Terminator already returned; the encoder is exhausted.
	encodeDone
)

// Encoder produces the encoding of a message one byte at a time, without an
// output buffer.  It yields exactly the bytes that EncodeBuf would write.
// An Encoder is good for a single message; call Reset to reuse it.
//
// This is much slower than EncodeBuf, since runs can't be moved in blocks.  It
// is useful when the consumer takes one byte at a time anyway, such as a
// serial peripheral, and there is no memory to spare for an encoded copy.
type Encoder struct {
	state encodeState
	run   []byte
	rest  []byte
	more  bool
}

// NewEncoder returns an Encoder for src.  src must not be modified until the
// Encoder is exhausted.
func NewEncoder(src []byte) *Encoder {
	e := &Encoder{}
	e.Reset(src)
	return e
}

// Reset discards any progress and starts encoding src.
func (e *Encoder) Reset(src []byte) {
	*e = Encoder{state: encodeBegin, rest: src}
}

// Next returns the next encoded byte.  ok is false once the terminator has
// been returned.
func (e *Encoder) Next() (b byte, ok bool) {
	switch e.state {
	case encodeBegin:
		e.run, e.rest, e.more = takeRun(e.rest)
		b = encodeLen(len(e.run))
	case encodeRun:
		b = e.run[0]
		e.run = e.run[1:]
	case encodeEnd:
		e.state = encodeDone
		return Sentinel, true
	default:
		return 0, false
	}

	switch {
	case len(e.run) > 0:
		e.state = encodeRun
	case e.more:
		e.state = encodeBegin
	default:
		e.state = encodeEnd
	}
	return b, true
}

// EncodeIter returns a sequence of the encoded bytes of src.  Each iteration
// runs a fresh Encoder.
func EncodeIter(src []byte) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		var e Encoder
		e.Reset(src)
		for {
			b, ok := e.Next()
			if !ok || !yield(b) {
				return
			}
		}
	}
}

// EncodedLen returns the exact length of the encoding of src, terminator
// included, without producing it.
func EncodedLen(src []byte) int {
	n := 1
	for {
		run, rest, more := takeRun(src)
		n += 1 + len(run)
		if !more {
			return n
		}
		src = rest
	}
}

package cobs

import (
	"bytes"
	"fmt"
)

// Sentinel is the byte that terminates every encoded frame, and that never
// appears anywhere else inside one.  Its value is assumed throughout the
// implementation and is part of the wire format.
const Sentinel byte = 0x00

// MaxRun is the longest run of non-sentinel bytes that a single overhead byte
// can describe.  It is exported so that fixed-size buffers can be sized with a
// constant expression:
//
//	var frame [n + (n+cobs.MaxRun-1)/cobs.MaxRun + 1]byte
const MaxRun = 254

// MaxEncodedLen returns the largest possible encoded size of a rawLen-byte
// message, terminator included.
func MaxEncodedLen(rawLen int) int {
	// An empty message still needs one overhead byte.
	overhead := 1
	if rawLen != 0 {
		overhead = (rawLen + MaxRun - 1) / MaxRun
	}
	return rawLen + overhead + 1
}

// encodeLen turns a run length in [0, MaxRun] into its overhead byte.
func encodeLen(n int) byte {
	return byte(n + 1)
}

// decodeLen turns an overhead byte back into a run length.  ok is false if
// code is the terminator.
func decodeLen(code byte) (n int, ok bool) {
	if code == Sentinel {
		return 0, false
	}
	return int(code) - 1, true
}

// takeRun splits the next run off the front of raw.  The run holds between 0
// and MaxRun bytes, none of which are the sentinel.  more reports whether
// anything is left to encode after the run; rest is what is left.  If the run
// was ended by a sentinel (and not by the MaxRun cap), that sentinel is
// implied by the overhead byte and is dropped from rest.  rest can be empty
// while more is true, when raw ends with a sentinel; that empty tail still
// needs its own overhead byte.
func takeRun(raw []byte) (run, rest []byte, more bool) {
	n := len(raw)
	if n > MaxRun {
		n = MaxRun
	}
	if i := bytes.IndexByte(raw[:n], Sentinel); i >= 0 {
		n = i
	}
	run, rest = raw[:n], raw[n:]
	switch {
	case len(rest) == 0:
		return run, nil, false
	case n == MaxRun:
		return run, rest, true
	default:
		return run, rest[1:], true
	}
}

// EncodeBuf encodes src into dst and returns the number of bytes written.  The
// last of those bytes is the terminator, so dst[:n] is the complete frame.
// Bytes in dst past the frame are left untouched.
//
// dst must be at least MaxEncodedLen(len(src)) bytes long; EncodeBuf panics if
// it isn't.
func EncodeBuf(src, dst []byte) int {
	if need := MaxEncodedLen(len(src)); len(dst) < need {
		panic(fmt.Sprintf("cobs: encode buffer too small: have %d bytes, need %d", len(dst), need))
	}

	out := 0
	for {
		run, rest, more := takeRun(src)
		dst[out] = encodeLen(len(run))
		out += 1 + copy(dst[out+1:], run)
		if !more {
			break
		}
		src = rest
	}
	dst[out] = Sentinel
	return out + 1
}

// DecodeBuf decodes the frame at the start of src into dst, and returns the
// number of decoded bytes.  Decoding stops at the first terminator; anything
// after it in src is ignored.  If src ends before a terminator is found, we
// return ErrTruncated, and the content of dst is unspecified.
//
// A decoded frame is never longer than its encoding, so dst must be at least
// len(src) bytes long; DecodeBuf panics if it isn't.
func DecodeBuf(src, dst []byte) (int, error) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("cobs: decode buffer too small: have %d bytes, need %d", len(dst), len(src)))
	}

	out := 0
	pendingZero := false
	for len(src) > 0 {
		n, ok := decodeLen(src[0])
		src = src[1:]
		if !ok {
			return out, nil
		}

		// A run shorter than MaxRun was ended by a sentinel, unless it was
		// the last run of the frame.  Now that we know it wasn't, emit it.
		if pendingZero {
			dst[out] = Sentinel
			out++
		}

		// Empty runs are common in zero-heavy data, so skip the copy.
		if n != 0 {
			if len(src) < n {
				return 0, ErrTruncated
			}
			out += copy(dst[out:], src[:n])
			src = src[n:]
		}
		pendingZero = n != MaxRun
	}
	return 0, ErrTruncated
}

// DecodeInPlace decodes the frame at the start of buf, writing the decoded
// message over the front of buf, and returns its length.  Writes always stay
// behind the read position, so no unread input is overwritten.  If buf ends
// before a terminator is found, we return ErrTruncated, and buf has been
// partially overwritten.
func DecodeInPlace(buf []byte) (int, error) {
	in, out := 0, 0
	pendingZero := false
	for in < len(buf) {
		n, ok := decodeLen(buf[in])
		if !ok {
			if pendingZero {
				// The last run's sentinel was written speculatively.
				out--
			}
			return out, nil
		}
		in++
		if len(buf)-in < n {
			return 0, ErrTruncated
		}
		out += copy(buf[out:], buf[in:in+n])
		in += n
		pendingZero = n != MaxRun
		if pendingZero {
			// out < in here: we have consumed one more byte than we've
			// written for this run.
			buf[out] = Sentinel
			out++
		}
	}
	return 0, ErrTruncated
}

package cobs

import (
	"bytes"
)

// ScanFrames is a split function for a bufio.Scanner that returns each
// encoded frame, terminator included, as a token.  Sentinels between frames
// are skipped, since a valid frame is never empty.  If the input ends with a
// partial frame, it is returned as a final token anyway; decoding it will
// report ErrTruncated.
func ScanFrames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && data[start] == Sentinel {
		start++
	}
	if start == len(data) {
		return start, nil, nil
	}
	if i := bytes.IndexByte(data[start:], Sentinel); i >= 0 {
		end := start + i + 1
		return end, data[start:end], nil
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	// Request more data.
	return start, nil, nil
}

// Scanner iterates through the encoded frames in a byte slice.  It does not
// decode anything until you ask it to, so you can skip over frames cheaply.
//
//	var s cobs.Scanner
//	s.Reset(encoded)
//	for s.Next() {
//		msg, err := s.Decode(nil)
//		...
//	}
type Scanner struct {
	data  []byte
	frame []byte
}

// Reset starts scanning a new byte slice.
func (s *Scanner) Reset(data []byte) {
	s.data = data
	s.frame = nil
}

// Next advances to the next frame, returning false once there are none left.
func (s *Scanner) Next() bool {
	for len(s.data) > 0 {
		advance, token, _ := ScanFrames(s.data, true)
		s.data = s.data[advance:]
		if token != nil {
			s.frame = token
			return true
		}
	}
	s.frame = nil
	return false
}

// Encoded returns the current frame, still encoded, including its terminator
// if it has one.  The result aliases the scanned slice.
func (s *Scanner) Encoded() []byte {
	return s.frame
}

// Decode appends the decoded content of the current frame to dst.
func (s *Scanner) Decode(dst []byte) ([]byte, error) {
	return AppendDecode(dst, s.frame)
}

// EncodedStartsWith reports whether the frame in encoded decodes to a message
// that starts with prefix.  It decodes only as much of the frame as it needs
// to, so a frame that is malformed after the prefix still matches.
func EncodedStartsWith(encoded, prefix []byte) (bool, error) {
	var d Decoder
	matched := 0
	for _, b := range encoded {
		if matched == len(prefix) {
			return true, nil
		}
		out, status, err := d.Advance(b)
		if err != nil {
			return false, err
		}
		switch status {
		case Append:
			if out != prefix[matched] {
				return false, nil
			}
			matched++
		case Done:
			return false, nil
		}
	}
	if matched == len(prefix) {
		return true, nil
	}
	return false, ErrTruncated
}

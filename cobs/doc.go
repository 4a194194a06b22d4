// Package cobs provides a Go implementation of Consistent Overhead Byte
// Stuffing (COBS).  COBS rewrites an arbitrary byte sequence into a slightly
// longer one that contains `0x00` only as its final byte, so that a stream of
// encoded frames can be split on zero bytes.  A receiver that joins a stream
// halfway through can always find the next frame boundary by scanning for the
// next zero.
//
// The encoded form of an n-byte message is at most MaxEncodedLen(n) bytes:
// the original length, plus one overhead byte per 254 input bytes, plus the
// terminator.
//
// There are several ways to encode and decode, with different costs:
//
//   - EncodeBuf and DecodeBuf work from one slice into another, moving whole
//     runs at a time.  These are the fast paths.
//   - EncodeIter (and the Encoder state machine behind it) produces encoded
//     bytes one at a time without an output buffer.
//   - DecodeInPlace decodes a frame inside the buffer that holds it.
//   - Decoder consumes encoded bytes one at a time, which suits data that
//     arrives a byte at a time from a serial line.
//
// COBS detects truncation but not corruption.  A damaged frame either fails
// with ErrTruncated or decodes to a shorter message than was sent; if you need
// integrity, add a checksum over the decoded payload.
package cobs

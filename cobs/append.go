package cobs

import "slices"

// AppendEncode appends the encoding of src, terminator included, to dst and
// returns the extended slice.
func AppendEncode(dst, src []byte) []byte {
	offset := len(dst)
	dst = slices.Grow(dst, MaxEncodedLen(len(src)))
	n := EncodeBuf(src, dst[offset:offset+MaxEncodedLen(len(src))])
	return dst[:offset+n]
}

// AppendDecode decodes the frame at the start of src, appends the decoded
// message to dst, and returns the extended slice.  If src is truncated, dst is
// returned unchanged along with ErrTruncated.
func AppendDecode(dst, src []byte) ([]byte, error) {
	offset := len(dst)
	dst = slices.Grow(dst, len(src))
	n, err := DecodeBuf(src, dst[offset:offset+len(src)])
	if err != nil {
		return dst[:offset], err
	}
	return dst[:offset+n], nil
}

package cobs_test

import (
	"bytes"
	"testing"

	"github.com/dcreager/cobs-go/cobs"
)

func addSeeds(f *testing.F) {
	for _, tc := range shortTestCases {
		f.Add([]byte(tc.decoded))
		f.Add([]byte(tc.encoded))
	}
}

func FuzzDecodeBuf(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		out := make([]byte, len(data))
		n, err := cobs.DecodeBuf(data, out)
		if err == nil && n > len(data) {
			t.Fatalf("decoded %d bytes from %d", n, len(data))
		}
	})
}

func FuzzRoundTripInPlace(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		out := make([]byte, cobs.MaxEncodedLen(len(data)))
		n := cobs.EncodeBuf(data, out)
		m, err := cobs.DecodeInPlace(out[:n])
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, out[:m]) {
			t.Fatalf("round trip mismatch: %x != %x", data, out[:m])
		}
	})
}

func FuzzEncodeBufMatchesEncodeIter(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		if a, b := encodeBuf(data), encodeIter(data); !bytes.Equal(a, b) {
			t.Fatalf("EncodeBuf %x != EncodeIter %x", a, b)
		}
	})
}

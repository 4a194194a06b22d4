package cobs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// message generates raw messages that exercise the interesting cases: runs of
// sentinels, and runs of non-sentinel bytes right around the MaxRun cap.
var message = rapid.Custom(func(t *rapid.T) []byte {
	smallChunk := rapid.SliceOf(rapid.Byte())
	largeChunk := rapid.SliceOfN(rapid.ByteRange(0x01, 0xff), cobs.MaxRun-1, cobs.MaxRun+1)
	sentinels := rapid.SliceOfN(rapid.Just(cobs.Sentinel), 1, 3)
	generator := rapid.SliceOf(rapid.OneOf(smallChunk, largeChunk, sentinels))
	chunks := generator.Draw(t, "chunks")
	var buf bytes.Buffer
	for _, chunk := range chunks {
		buf.Write(chunk)
	}
	// buf.Bytes() is nil for an empty draw; decoders return an empty slice.
	return append([]byte{}, buf.Bytes()...)
})

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := message.Draw(t, "input")
		for encName, encode := range encoders {
			encoded := encode(input)
			for decName, decode := range decoders {
				decoded, err := decode(encoded)
				require.NoError(t, err, "%s/%s", encName, decName)
				assert.Equal(t, input, decoded, "%s/%s", encName, decName)
			}
		}
	})
}

func TestEncodersAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := message.Draw(t, "input")
		expected := encodeBuf(input)
		assert.Equal(t, expected, encodeIter(input))
		assert.Equal(t, len(expected), cobs.EncodedLen(input))
	})
}

func TestEncodedLengthBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := message.Draw(t, "input")
		encoded := encodeBuf(input)
		assert.LessOrEqual(t, len(encoded), cobs.MaxEncodedLen(len(input)))
	})
}

func TestEncodedLengthWorstCase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.SliceOf(rapid.ByteRange(0x01, 0xff)).Draw(t, "input")
		assert.Equal(t, cobs.MaxEncodedLen(len(input)), len(encodeBuf(input)))
	})
}

func TestSentinelOnlyAtEnd(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := message.Draw(t, "input")
		encoded := encodeBuf(input)
		require.NotEmpty(t, encoded)
		assert.Equal(t, cobs.Sentinel, encoded[len(encoded)-1])
		assert.Equal(t, -1, bytes.IndexByte(encoded[:len(encoded)-1], cobs.Sentinel))
	})
}

func TestPrefixIsTruncated(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := message.Draw(t, "input")
		encoded := encodeBuf(input)
		n := rapid.IntRange(0, len(encoded)-1).Draw(t, "prefix")
		for name, decode := range decoders {
			_, err := decode(encoded[:n])
			assert.ErrorIs(t, err, cobs.ErrTruncated, name)
		}
	})
}

func TestArbitraryInputDoesNotPanic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.SliceOf(rapid.Byte()).Draw(t, "input")
		for name, decode := range decoders {
			decoded, err := decode(input)
			if err != nil {
				assert.ErrorIs(t, err, cobs.ErrTruncated, name)
				continue
			}
			assert.LessOrEqual(t, len(decoded), len(input), name)
		}
	})
}

func TestRoundTripRandomLists(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		inputList := rapid.SliceOf(message).Draw(t, "inputList")
		checkListRoundTrip(t, inputList)
	})
}

func TestEncodedStartsWithRandomLists(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := message.Draw(t, "prefix")
		inputList := rapid.SliceOf(message).Draw(t, "inputList")
		shouldBePrefixed := rapid.SliceOfN(rapid.Bool(), len(inputList), len(inputList)).Draw(t, "shouldBePrefixed")

		// Ensure that every "prefixed" input actually starts with the prefix.
		var inputs []string
		for i := range inputList {
			input := string(inputList[i])
			if shouldBePrefixed[i] {
				input = string(prefix) + input
			}
			inputs = append(inputs, input)
		}

		// Some of the other inputs might start with the prefix by chance.
		var expected []string
		for _, input := range inputs {
			if strings.HasPrefix(input, string(prefix)) {
				expected = append(expected, input)
			}
		}

		checkEncodedStartsWith(t, inputs, string(prefix), expected)
	})
}

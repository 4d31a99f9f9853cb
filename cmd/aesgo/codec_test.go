package main

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestDecodeHexRoundTrip(t *testing.T) {
	b, err := decodeHex("2b7e151628aed2a6abf7158809cf4f3c")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(encodeHex(b), "2b7e151628aed2a6abf7158809cf4f3c"))
}

func TestDecodeHexRejectsOddLength(t *testing.T) {
	_, err := decodeHex("abc")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestDecodeHexRejectsNonHex(t *testing.T) {
	_, err := decodeHex("zz")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestDecodeHexTrimsSurroundingWhitespace(t *testing.T) {
	b, err := decodeHex("\n2b7e\n")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(b), 2))
}

func TestDecodeBase64TolerantOfNewlines(t *testing.T) {
	// encodeBase64 line-wraps; decodeBase64 must accept its own output.
	data := []byte("the quick brown fox jumps over the lazy dog, twice over")
	wrapped := encodeBase64(data)
	qt.Assert(t, qt.Equals(strings.Contains(wrapped, "\n"), true))

	got, err := decodeBase64(wrapped)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got, data))
}

func TestDecodeBase64RejectsGarbage(t *testing.T) {
	_, err := decodeBase64("not-valid-base64!!")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestEncodeBase64WrapsAt80Columns(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i)
	}

	wrapped := encodeBase64(data)
	lines := strings.Split(strings.TrimRight(wrapped, "\n"), "\n")
	for _, line := range lines[:len(lines)-1] {
		qt.Assert(t, qt.Equals(len(line), base64LineWidth))
	}
	qt.Assert(t, qt.Equals(len(lines[len(lines)-1]) <= base64LineWidth, true))
}

func TestEncodeHexIsLowercaseUnseparated(t *testing.T) {
	got := encodeHex([]byte{0xAB, 0xCD, 0xEF})
	qt.Assert(t, qt.Equals(got, "abcdef"))
}

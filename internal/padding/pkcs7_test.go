package padding

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestPadUnpadRoundTrip(t *testing.T) {
	for n := 0; n < 40; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}

		padded := Pad(data)
		qt.Assert(t, qt.Equals(len(padded)%16, 0))
		qt.Assert(t, qt.Equals(len(padded) > len(data), true))

		got, err := Unpad(padded)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.DeepEquals(got, data))
	}
}

func TestPadFullBlockWhenAligned(t *testing.T) {
	data := make([]byte, 32)
	padded := Pad(data)
	qt.Assert(t, qt.Equals(len(padded), 48))
	for _, b := range padded[32:] {
		qt.Assert(t, qt.Equals(b, byte(16)))
	}
}

func TestUnpadRejectsBadPadding(t *testing.T) {
	bad := make([]byte, 16)
	bad[15] = 0x00 // padLen 0 is invalid
	_, err := Unpad(bad)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidPadding))

	bad2 := make([]byte, 16)
	for i := range bad2 {
		bad2[i] = 3
	}
	bad2[13] = 0xff // not all of the last 3 bytes equal 3
	_, err = Unpad(bad2)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidPadding))
}

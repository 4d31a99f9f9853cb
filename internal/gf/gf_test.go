package gf

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestSBoxInvolution(t *testing.T) {
	sbox := SBOX()
	invSbox := InvSBOX()

	for x := 0; x < 256; x++ {
		got := invSbox[sbox[x]]
		qt.Assert(t, qt.Equals(got, byte(x)))
	}
}

func TestT3IsT2XorIdentity(t *testing.T) {
	for x := 0; x < 256; x++ {
		got := T3(byte(x))
		want := T2(byte(x)) ^ byte(x)
		qt.Assert(t, qt.Equals(got, want))
	}
}

func TestRconSequence(t *testing.T) {
	want := []byte{0x8d, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36, 0x6c}
	for i, w := range want {
		qt.Assert(t, qt.Equals(RCON(byte(i)), w))
	}
}

func TestMixColumnInverseTables(t *testing.T) {
	// MixColumns . InvMixColumns must be the identity on an arbitrary
	// column; that is checked in the block package's involution test.
	// Here we only check each multiply table agrees with a direct Gmul
	// call.
	for x := 0; x < 256; x++ {
		b := byte(x)
		qt.Assert(t, qt.Equals(T2(b), Gmul(0x02, b)))
		qt.Assert(t, qt.Equals(T3(b), Gmul(0x03, b)))
		qt.Assert(t, qt.Equals(T9(b), Gmul(0x09, b)))
		qt.Assert(t, qt.Equals(T11(b), Gmul(0x0b, b)))
		qt.Assert(t, qt.Equals(T13(b), Gmul(0x0d, b)))
		qt.Assert(t, qt.Equals(T14(b), Gmul(0x0e, b)))
	}
}

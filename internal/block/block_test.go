package block

import (
	"encoding/hex"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/wedkarz02/aesgo/internal/keyschedule"
	"github.com/wedkarz02/aesgo/internal/variant"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	qt.Assert(t, qt.IsNil(err))
	return b
}

// TestEncryptBlockFIPS197AppendixB is KAT vector 1 from spec.md §8.
func TestEncryptBlockFIPS197AppendixB(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	plain := mustHex(t, "3243f6a8885a308d313198a2e0370734")
	want := mustHex(t, "3925841d02dc09fbdc118597196a0b32")

	xKey, err := keyschedule.Expand(key)
	qt.Assert(t, qt.IsNil(err))

	got, err := Encrypt(plain, xKey, variant.AES128)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got, want))

	back, err := Decrypt(got, xKey, variant.AES128)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(back, plain))
}

func TestEncryptBlockKATVectors(t *testing.T) {
	cases := []struct {
		name  string
		sz    variant.Size
		key   string
		plain string
		want  string
	}{
		{
			name:  "AES-128 SP800-38A",
			sz:    variant.AES128,
			key:   "2b7e151628aed2a6abf7158809cf4f3c",
			plain: "6bc1bee22e409f96e93d7e117393172a",
			want:  "3ad77bb40d7a3660a89ecaf32466ef97",
		},
		{
			name:  "AES-192 SP800-38A",
			sz:    variant.AES192,
			key:   "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b",
			plain: "6bc1bee22e409f96e93d7e117393172a",
			want:  "bd334f1d6e45f25ff712a214571fa5cc",
		},
		{
			name:  "AES-256 SP800-38A",
			sz:    variant.AES256,
			key:   "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4",
			plain: "6bc1bee22e409f96e93d7e117393172a",
			want:  "f3eed1bdb5d2a03c064b5a7e3db181f8",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			xKey, err := keyschedule.Expand(mustHex(t, tc.key))
			qt.Assert(t, qt.IsNil(err))

			got, err := Encrypt(mustHex(t, tc.plain), xKey, tc.sz)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.DeepEquals(got, mustHex(t, tc.want)))
		})
	}
}

func TestBadBlockSize(t *testing.T) {
	xKey, err := keyschedule.Expand(make([]byte, 16))
	qt.Assert(t, qt.IsNil(err))

	_, err = Encrypt(make([]byte, 15), xKey, variant.AES128)
	qt.Assert(t, qt.ErrorIs(err, ErrBadBlockSize))

	_, err = Decrypt(make([]byte, 17), xKey, variant.AES128)
	qt.Assert(t, qt.ErrorIs(err, ErrBadBlockSize))
}

func TestMixColumnsInvolution(t *testing.T) {
	var s State
	copy(s[:], []byte{0xdb, 0x13, 0x53, 0x45, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	original := s

	s.mixColumns()
	s.invMixColumns()

	qt.Assert(t, qt.DeepEquals(s, original))
}

func TestShiftRowsInvolution(t *testing.T) {
	var s State
	for i := range s {
		s[i] = byte(i)
	}
	original := s

	s.shiftRows()
	s.invShiftRows()

	qt.Assert(t, qt.DeepEquals(s, original))
}

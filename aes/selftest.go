package aes

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// katVector is one known-answer vector from spec.md §8.
type katVector struct {
	name      string
	key       string
	plaintext string
	ciphertext string
}

var katByVariant = map[int][]katVector{
	128: {
		{
			name:       "FIPS-197 Appendix B",
			key:        "2b7e151628aed2a6abf7158809cf4f3c",
			plaintext:  "3243f6a8885a308d313198a2e0370734",
			ciphertext: "3925841d02dc09fbdc118597196a0b32",
		},
		{
			name:       "NIST SP800-38A",
			key:        "2b7e151628aed2a6abf7158809cf4f3c",
			plaintext:  "6bc1bee22e409f96e93d7e117393172a",
			ciphertext: "3ad77bb40d7a3660a89ecaf32466ef97",
		},
	},
	192: {
		{
			name:       "NIST SP800-38A",
			key:        "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b",
			plaintext:  "6bc1bee22e409f96e93d7e117393172a",
			ciphertext: "bd334f1d6e45f25ff712a214571fa5cc",
		},
	},
	256: {
		{
			name:       "NIST SP800-38A",
			key:        "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4",
			plaintext:  "6bc1bee22e409f96e93d7e117393172a",
			ciphertext: "f3eed1bdb5d2a03c064b5a7e3db181f8",
		},
	},
}

// SelfTest runs the published known-answer vectors for the given key
// size (128, 192, or 256) against the ECB encryption path, the same
// purpose the C reference's -test128/-test192/-test256 flags serve. It
// returns an error describing the first mismatch, or nil if every
// vector encrypts to its expected ciphertext.
func SelfTest(bits int) error {
	vectors, ok := katByVariant[bits]
	if !ok {
		return fmt.Errorf("aes: no self-test vectors for AES-%d", bits)
	}

	for _, v := range vectors {
		key, err := hex.DecodeString(v.key)
		if err != nil {
			return fmt.Errorf("aes: self-test %q: bad key fixture: %w", v.name, err)
		}
		plain, err := hex.DecodeString(v.plaintext)
		if err != nil {
			return fmt.Errorf("aes: self-test %q: bad plaintext fixture: %w", v.name, err)
		}
		want, err := hex.DecodeString(v.ciphertext)
		if err != nil {
			return fmt.Errorf("aes: self-test %q: bad ciphertext fixture: %w", v.name, err)
		}

		c, err := NewCipher(key)
		if err != nil {
			return fmt.Errorf("aes: self-test %q: %w", v.name, err)
		}

		got, err := c.Encrypt(plain, ModeECB, nil, WithNoPadding())
		c.Zeroize()
		if err != nil {
			return fmt.Errorf("aes: self-test %q: %w", v.name, err)
		}

		if !bytes.Equal(got, want) {
			return fmt.Errorf("aes: self-test %q (AES-%d) failed: got %x want %x", v.name, bits, got, want)
		}
	}

	return nil
}

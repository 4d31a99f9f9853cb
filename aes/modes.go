// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package aes

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/wedkarz02/aesgo/internal/padding"
)

// Mode selects the block cipher mode of operation.
type Mode int

const (
	ModeECB Mode = iota
	ModeCBC
	// ModeCTR treats the 16-byte IV as an 8-byte nonce followed by an
	// 8-byte big-endian counter (spec.md §9 open question 1): callers
	// supplying a 16-byte IV implicitly choose that split.
	ModeCTR
)

func (m Mode) String() string {
	switch m {
	case ModeECB:
		return "ECB"
	case ModeCBC:
		return "CBC"
	case ModeCTR:
		return "CTR"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// options carries the encrypt/decrypt call flags (currently just
// no-padding, the `-nopkcs` CLI flag).
type options struct {
	noPadding bool
}

// Option configures a single Encrypt/Decrypt call.
type Option func(*options)

// WithNoPadding disables PKCS#7 padding on encrypt (the caller's
// plaintext must already be block-aligned) and padding removal on
// decrypt. It has no effect under CTR, which never pads.
func WithNoPadding() Option {
	return func(o *options) { o.noPadding = true }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var (
	// ErrInvalidIVSize is returned when a CBC/CTR call is given an IV
	// that isn't exactly 16 bytes.
	ErrInvalidIVSize = errors.New("aes: iv must be 16 bytes")

	// ErrInvalidCiphertextLength is returned when ECB/CBC ciphertext
	// isn't a multiple of the block size, and when ECB/CBC plaintext
	// isn't block-aligned under WithNoPadding.
	ErrInvalidCiphertextLength = errors.New("aes: ciphertext length must be a multiple of the block size")

	// ErrInvalidPadding is returned by ECB/CBC Decrypt when the
	// decrypted data does not end in valid PKCS#7 padding.
	ErrInvalidPadding = padding.ErrInvalidPadding
)

// Encrypt encrypts plaintext under mode. iv is used by CBC and CTR and
// must be 16 bytes; a nil iv is treated as all-zero, matching the C
// reference's behavior for a missing iv. iv is ignored for ECB.
func (c *Cipher) Encrypt(plaintext []byte, mode Mode, iv []byte, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)

	switch mode {
	case ModeECB:
		return c.encryptECB(plaintext, o)
	case ModeCBC:
		return c.encryptCBC(plaintext, iv, o)
	case ModeCTR:
		return c.cryptCTR(plaintext, iv)
	default:
		return nil, fmt.Errorf("aes: unknown mode %v", mode)
	}
}

// Decrypt decrypts ciphertext under mode. Under CTR, Decrypt is the same
// function as Encrypt (spec.md §3 "Direction").
func (c *Cipher) Decrypt(ciphertext []byte, mode Mode, iv []byte, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)

	switch mode {
	case ModeECB:
		return c.decryptECB(ciphertext, o)
	case ModeCBC:
		return c.decryptCBC(ciphertext, iv, o)
	case ModeCTR:
		return c.cryptCTR(ciphertext, iv)
	default:
		return nil, fmt.Errorf("aes: unknown mode %v", mode)
	}
}

func (c *Cipher) encryptECB(plaintext []byte, o options) ([]byte, error) {
	padded := plaintext
	if !o.noPadding {
		padded = padding.Pad(plaintext)
	} else if len(padded)%BlockSize != 0 {
		return nil, ErrInvalidCiphertextLength
	}

	out := make([]byte, 0, len(padded))
	for i := 0; i < len(padded); i += BlockSize {
		blk, err := c.encryptBlock(padded[i : i+BlockSize])
		if err != nil {
			return nil, err
		}
		out = append(out, blk...)
	}

	return out, nil
}

func (c *Cipher) decryptECB(ciphertext []byte, o options) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, ErrInvalidCiphertextLength
	}

	out := make([]byte, 0, len(ciphertext))
	for i := 0; i < len(ciphertext); i += BlockSize {
		blk, err := c.decryptBlock(ciphertext[i : i+BlockSize])
		if err != nil {
			return nil, err
		}
		out = append(out, blk...)
	}

	if o.noPadding {
		return out, nil
	}
	return padding.Unpad(out)
}

func normalizeIV(iv []byte) ([]byte, error) {
	if iv == nil {
		return make([]byte, IVSize), nil
	}
	if len(iv) != IVSize {
		return nil, ErrInvalidIVSize
	}
	return iv, nil
}

func xorBlock(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// encryptCBC chains each plaintext block against the previous
// ciphertext block (the IV for the first block), per spec.md §4.4.
func (c *Cipher) encryptCBC(plaintext []byte, iv []byte, o options) ([]byte, error) {
	prevCipher, err := normalizeIV(iv)
	if err != nil {
		return nil, err
	}

	padded := plaintext
	if !o.noPadding {
		padded = padding.Pad(plaintext)
	} else if len(padded)%BlockSize != 0 {
		return nil, ErrInvalidCiphertextLength
	}

	out := make([]byte, 0, len(padded))
	for i := 0; i < len(padded); i += BlockSize {
		masked := xorBlock(padded[i:i+BlockSize], prevCipher)
		encBlock, err := c.encryptBlock(masked)
		if err != nil {
			return nil, err
		}
		out = append(out, encBlock...)
		prevCipher = encBlock
	}

	return out, nil
}

// decryptCBC reverses encryptCBC. The chaining register must be updated
// from the original ciphertext block, captured before decryption
// clobbers the working buffer (spec.md §4.4).
func (c *Cipher) decryptCBC(ciphertext []byte, iv []byte, o options) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, ErrInvalidCiphertextLength
	}

	prevCipher, err := normalizeIV(iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(ciphertext))
	for i := 0; i < len(ciphertext); i += BlockSize {
		curCipher := ciphertext[i : i+BlockSize]

		decBlock, err := c.decryptBlock(curCipher)
		if err != nil {
			return nil, err
		}

		plainBlock := xorBlock(decBlock, prevCipher)
		out = append(out, plainBlock...)
		prevCipher = curCipher
	}

	if o.noPadding {
		return out, nil
	}
	return padding.Unpad(out)
}

// ctrNonceSize and ctrCounterSize split the 16-byte CTR IV per spec.md
// §3/§9: 8 bytes of nonce followed by an 8-byte big-endian counter.
const (
	ctrNonceSize   = 8
	ctrCounterSize = 8
)

// cryptCTR XORs data against the keystream produced by ECB-encrypting
// successive counter blocks; encryption and decryption are the same
// operation (spec.md §4.4), grounded on the C reference's
// aesEncryptCTR.
func (c *Cipher) cryptCTR(data []byte, iv []byte) ([]byte, error) {
	ivBytes, err := normalizeIV(iv)
	if err != nil {
		return nil, err
	}

	var nonce [ctrNonceSize]byte
	copy(nonce[:], ivBytes[:ctrNonceSize])
	counter := binary.BigEndian.Uint64(ivBytes[ctrNonceSize:])

	out := make([]byte, len(data))
	ctrBlock := make([]byte, BlockSize)
	copy(ctrBlock[:ctrNonceSize], nonce[:])

	for i := 0; i < len(data); i += BlockSize {
		binary.BigEndian.PutUint64(ctrBlock[ctrNonceSize:], counter)

		keystream, err := c.encryptBlock(ctrBlock)
		if err != nil {
			return nil, err
		}

		end := i + BlockSize
		if end > len(data) {
			end = len(data)
		}

		for j := i; j < end; j++ {
			out[j] = data[j] ^ keystream[j-i]
		}

		counter++ // wraps at 2^64; out of scope per spec.md §4.4
	}

	return out, nil
}

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

// Package aes implements the AES (Rijndael) block cipher at 128, 192, and
// 256 bit key sizes with ECB, CBC, and CTR modes of operation and PKCS#7
// padding.
package aes

import (
	"errors"
	"fmt"

	"github.com/wedkarz02/aesgo/internal/block"
	"github.com/wedkarz02/aesgo/internal/keyschedule"
	"github.com/wedkarz02/aesgo/internal/variant"
)

// BlockSize is the AES block size in bytes.
const BlockSize = variant.BlockSize

// IVSize is the size in bytes of a CBC or CTR initialization vector.
const IVSize = variant.BlockSize

// Cipher holds a validated key and its expanded round-key stream. Build
// one with NewCipher and reuse it across calls; construction does the
// key-schedule work once, and every later call uses that schedule, the
// way the teacher's AES256 struct does (aes256.go's NewAES256).
type Cipher struct {
	key     []byte
	xKey    keyschedule.ExpandedKey
	variant variant.Size
}

// ErrInvalidKeySize is returned by NewCipher when the key is not 16, 24,
// or 32 bytes long.
var ErrInvalidKeySize = errors.New("aes: key must be 16, 24, or 32 bytes")

// NewCipher validates key and expands it into round keys. The variant
// (AES-128/192/256) is selected by key length alone, per spec.md §3.
func NewCipher(key []byte) (*Cipher, error) {
	sz, err := variant.Of(len(key))
	if err != nil {
		return nil, fmt.Errorf("%w", ErrInvalidKeySize)
	}

	xKey, err := keyschedule.Expand(key)
	if err != nil {
		return nil, err
	}

	k := make([]byte, len(key))
	copy(k, key)

	return &Cipher{key: k, xKey: xKey, variant: sz}, nil
}

// Variant reports which AES key size this cipher was constructed for.
func (c *Cipher) Variant() variant.Size {
	return c.variant
}

// Zeroize overwrites the cipher's key and expanded round-key stream so
// they cannot be recovered from memory. Callers that hold a Cipher past
// the call where it was used SHOULD defer this (spec.md §5, §9 open
// question 3).
func (c *Cipher) Zeroize() {
	for i := range c.key {
		c.key[i] = 0x00
	}
	c.xKey.Zeroize()
}

// encryptBlock encrypts exactly one 16-byte block.
func (c *Cipher) encryptBlock(in []byte) ([]byte, error) {
	return block.Encrypt(in, c.xKey, c.variant)
}

// decryptBlock decrypts exactly one 16-byte block.
func (c *Cipher) decryptBlock(in []byte) ([]byte, error) {
	return block.Decrypt(in, c.xKey, c.variant)
}

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

// Package variant defines the per-key-size constants the rest of the AES
// implementation is parameterized over. The teacher library hardwires
// these to the 256 bit case (src/consts); this generalizes them to
// 128/192/256 so one key schedule and one round function serve all three.
package variant

import "fmt"

// Size identifies an AES key-size variant.
type Size int

const (
	AES128 Size = 16
	AES192 Size = 24
	AES256 Size = 32
)

const (
	// BlockSize is the AES block size in bytes, fixed regardless of
	// key size.
	BlockSize = 16

	// WordSize is the size in bytes of one key-schedule word.
	WordSize = 4
)

// Of resolves the variant matching a key of length n bytes.
func Of(n int) (Size, error) {
	switch Size(n) {
	case AES128, AES192, AES256:
		return Size(n), nil
	default:
		return 0, fmt.Errorf("aesgo: invalid key size %d (want 16, 24, or 32)", n)
	}
}

// Rounds returns the number of AES rounds (cycles) for the variant: 10,
// 12, or 14 for AES-128/192/256 respectively.
func (s Size) Rounds() int {
	switch s {
	case AES128:
		return 10
	case AES192:
		return 12
	default:
		return 14
	}
}

// ExpandedKeySize returns the length in bytes of the expanded round-key
// stream: 176, 208, or 240 for AES-128/192/256 respectively.
func (s Size) ExpandedKeySize() int {
	return BlockSize * (s.Rounds() + 1)
}

// Bits returns the variant's key size in bits (128, 192, or 256).
func (s Size) Bits() int {
	return int(s) * 8
}

func (s Size) String() string {
	return fmt.Sprintf("AES-%d", s.Bits())
}

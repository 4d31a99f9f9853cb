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

// This package has been heavily inspired by Sam Trenholme's blog.
// I highly recommend giving it a read:
// https://www.samiam.org/key-schedule.html

// Package keyschedule implements AES key expansion for all three key
// sizes.
package keyschedule

import (
	"fmt"

	"github.com/wedkarz02/aesgo/internal/gf"
	"github.com/wedkarz02/aesgo/internal/variant"
)

// ExpandedKey is the round-key stream produced by Expand: 176, 208, or
// 240 bytes depending on variant.
type ExpandedKey []byte

func rotWord(word [variant.WordSize]byte) [variant.WordSize]byte {
	var rotated [variant.WordSize]byte
	for i := 0; i < variant.WordSize-1; i++ {
		rotated[i] = word[i+1]
	}
	rotated[variant.WordSize-1] = word[0]
	return rotated
}

func subWord(word [variant.WordSize]byte) [variant.WordSize]byte {
	sbox := gf.SBOX()
	var subw [variant.WordSize]byte
	for i := 0; i < variant.WordSize; i++ {
		subw[i] = sbox[word[i]]
	}
	return subw
}

// scheduleCore applies the "schedule core" step from spec.md §4.2: rotate
// left by one byte, substitute every byte through the S-box, then XOR the
// round constant into the first byte. idx is the 1-based counter,
// incremented once per invocation across the whole expansion.
func scheduleCore(word [variant.WordSize]byte, idx byte) [variant.WordSize]byte {
	word = rotWord(word)
	word = subWord(word)
	word[0] ^= gf.RCON(idx)
	return word
}

// Expand produces the full round-key stream for key k. The first len(k)
// bytes of the result equal k verbatim (spec.md §8, "key schedule
// boundary").
func Expand(k []byte) (ExpandedKey, error) {
	sz, err := variant.Of(len(k))
	if err != nil {
		return nil, fmt.Errorf("keyschedule: %w", err)
	}

	n := int(sz)
	expSize := sz.ExpandedKeySize()

	xKey := make(ExpandedKey, expSize)
	copy(xKey, k)

	var tmp [variant.WordSize]byte
	c := n
	var idx byte = 1

	for c < expSize {
		for a := 0; a < variant.WordSize; a++ {
			tmp[a] = xKey[a+c-variant.WordSize]
		}

		if c%n == 0 {
			tmp = scheduleCore(tmp, idx)
			idx++
		} else if sz == variant.AES256 && c%n == variant.BlockSize {
			tmp = subWord(tmp)
		}

		for a := 0; a < variant.WordSize; a++ {
			xKey[c] = xKey[c-n] ^ tmp[a]
			c++
		}
	}

	return xKey, nil
}

// Zeroize overwrites the expanded key in place so it cannot be recovered
// from memory after the cipher is done with it (spec.md §5, §9 open
// question 3 — the C/Go reference implementations never clear this).
func (e ExpandedKey) Zeroize() {
	for i := range e {
		e[i] = 0x00
	}
}

// RoundKey returns the 16-byte slice of the expanded key used by
// AddRoundKey for the given round index.
func (e ExpandedKey) RoundKey(round int) []byte {
	return e[round*variant.BlockSize : (round+1)*variant.BlockSize]
}

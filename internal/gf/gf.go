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

// Package gf implements GF(2^8) arithmetic for AES: the S-box and its
// inverse, the round-constant sequence, and the fixed multiply-by-N
// tables MixColumns and InvMixColumns rely on.
//
// https://en.wikipedia.org/wiki/Rijndael_S-box
package gf

import "sync"

// Box is a total byte->byte lookup table over the 256 GF(2^8) elements.
type Box [256]byte

func rotL8(x byte, shift uint) byte {
	return byte((x << shift) | (x >> (8 - shift)))
}

// Gmul multiplies a and b in GF(2^8) reduced by the AES polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11b).
func Gmul(a, b byte) byte {
	var p byte

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}

		hiBitSet := a&0x80 != 0
		a <<= 1
		if hiBitSet {
			a ^= 0x1b
		}

		b >>= 1
	}

	return p
}

// newSBox builds the Rijndael S-box from its algebraic definition (affine
// transform of the multiplicative inverse in GF(2^8)), the same
// construction the teacher's sbox package uses.
func newSBox() *Box {
	sbox := new(Box)

	var p byte = 1
	var q byte = 1

	for {
		if p&0x80 != 0 {
			p = p ^ (p << 1) ^ 0x1b
		} else {
			p = p ^ (p << 1)
		}

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4

		if q&0x80 != 0 {
			q ^= 0x09
		}

		xformed := q ^ rotL8(q, 1) ^ rotL8(q, 2) ^ rotL8(q, 3) ^ rotL8(q, 4)
		sbox[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	sbox[0] = 0x63
	return sbox
}

func newInvSBox(sbox *Box) *Box {
	invsbox := new(Box)
	for i := 0; i < len(sbox); i++ {
		invsbox[sbox[i]] = byte(i)
	}
	return invsbox
}

func newMulTable(k byte) *Box {
	table := new(Box)
	for i := 0; i < 256; i++ {
		table[i] = Gmul(k, byte(i))
	}
	return table
}

func newRcon() *Box {
	// RCON[0] is unused by the key schedule (1-based index); the
	// reference C table seeds it with 0x8d, the value one step before
	// the multiplicative cycle wraps back to 0x01.
	rcon := new(Box)
	rcon[0] = 0x8d

	var r byte = 1
	for i := 1; i < 256; i++ {
		rcon[i] = r
		r = Gmul(r, 2)
	}
	return rcon
}

var (
	once     sync.Once
	sbox     *Box
	invSbox  *Box
	rconTbl  *Box
	t2, t3   *Box
	t9, t11  *Box
	t13, t14 *Box
)

func initTables() {
	sbox = newSBox()
	invSbox = newInvSBox(sbox)
	rconTbl = newRcon()
	t2 = newMulTable(0x02)
	t3 = newMulTable(0x03)
	t9 = newMulTable(0x09)
	t11 = newMulTable(0x0b)
	t13 = newMulTable(0x0d)
	t14 = newMulTable(0x0e)
}

// SBOX returns the shared Rijndael substitution table, computed once.
func SBOX() *Box { once.Do(initTables); return sbox }

// InvSBOX returns the shared inverse substitution table.
func InvSBOX() *Box { once.Do(initTables); return invSbox }

// RCON returns rcon(idx), the 1-based round-constant sequence used by the
// key schedule core.
func RCON(idx byte) byte { once.Do(initTables); return rconTbl[idx] }

// T2 returns 2⊗x, used directly by MixColumns.
func T2(x byte) byte { once.Do(initTables); return t2[x] }

// T3 returns 3⊗x, used directly by MixColumns. T3(x) == T2(x) ^ x.
func T3(x byte) byte { once.Do(initTables); return t3[x] }

// T9 returns 9⊗x, used by InvMixColumns.
func T9(x byte) byte { once.Do(initTables); return t9[x] }

// T11 returns 11⊗x, used by InvMixColumns.
func T11(x byte) byte { once.Do(initTables); return t11[x] }

// T13 returns 13⊗x, used by InvMixColumns.
func T13(x byte) byte { once.Do(initTables); return t13[x] }

// T14 returns 14⊗x, used by InvMixColumns.
func T14(x byte) byte { once.Do(initTables); return t14[x] }

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

// Package block implements the AES round function: SubBytes, ShiftRows,
// MixColumns, AddRoundKey and their inverses, operating on a single
// 16-byte state.
package block

import (
	"errors"

	"github.com/wedkarz02/aesgo/internal/gf"
	"github.com/wedkarz02/aesgo/internal/keyschedule"
	"github.com/wedkarz02/aesgo/internal/variant"
)

// ErrBadBlockSize is returned whenever a function expecting exactly one
// 16-byte block is given a buffer of a different length.
var ErrBadBlockSize = errors.New("block: state must be exactly 16 bytes")

// State is the 4x4 AES state matrix stored flat and column-major: byte i
// of the input block lives at row i%4, column i/4, i.e. index r+4c
// (spec.md §9). Encrypt/Decrypt mutate a copy of the caller's block in
// place and return it.
type State [variant.BlockSize]byte

func newState(b []byte) (State, error) {
	if len(b) != variant.BlockSize {
		return State{}, ErrBadBlockSize
	}
	var s State
	copy(s[:], b)
	return s, nil
}

func (s *State) subBytes() {
	sbox := gf.SBOX()
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func (s *State) invSubBytes() {
	invSbox := gf.InvSBOX()
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row 1 left by 1, row 2 left by 2, row 3 left by 3
// (equivalently right by 1), matching libaes.c's shiftRows for ENCRYPT.
func (s *State) shiftRows() {
	rotateRowLeft(s, 1, 1)
	rotateRowLeft(s, 2, 2)
	rotateRowLeft(s, 3, 3)
}

func (s *State) invShiftRows() {
	rotateRowLeft(s, 1, 3)
	rotateRowLeft(s, 2, 2)
	rotateRowLeft(s, 3, 1)
}

// rotateRowLeft rotates row r of the column-major state left by shift
// positions (mod 4 columns).
func rotateRowLeft(s *State, r, shift int) {
	var row [4]byte
	for c := 0; c < 4; c++ {
		row[c] = s[r+4*((c+shift)%4)]
	}
	for c := 0; c < 4; c++ {
		s[r+4*c] = row[c]
	}
}

func (s *State) mixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c+0] = gf.T2(a0) ^ gf.T3(a1) ^ a2 ^ a3
		s[4*c+1] = a0 ^ gf.T2(a1) ^ gf.T3(a2) ^ a3
		s[4*c+2] = a0 ^ a1 ^ gf.T2(a2) ^ gf.T3(a3)
		s[4*c+3] = gf.T3(a0) ^ a1 ^ a2 ^ gf.T2(a3)
	}
}

func (s *State) invMixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c+0] = gf.T14(a0) ^ gf.T11(a1) ^ gf.T13(a2) ^ gf.T9(a3)
		s[4*c+1] = gf.T9(a0) ^ gf.T14(a1) ^ gf.T11(a2) ^ gf.T13(a3)
		s[4*c+2] = gf.T13(a0) ^ gf.T9(a1) ^ gf.T14(a2) ^ gf.T11(a3)
		s[4*c+3] = gf.T11(a0) ^ gf.T13(a1) ^ gf.T9(a2) ^ gf.T14(a3)
	}
}

// addRoundKey XORs the state with the round key at roundIdx. For
// decryption the caller passes cycles-roundIdx so the key stream is
// consumed from the far end — the only place encrypt/decrypt order
// differs (spec.md §9).
func (s *State) addRoundKey(xKey keyschedule.ExpandedKey, roundIdx int) {
	rk := xKey.RoundKey(roundIdx)
	for i := range s {
		s[i] ^= rk[i]
	}
}

// Encrypt performs one 16-byte block of AES encryption under the given
// expanded key.
func Encrypt(plain []byte, xKey keyschedule.ExpandedKey, sz variant.Size) ([]byte, error) {
	s, err := newState(plain)
	if err != nil {
		return nil, err
	}

	cycles := sz.Rounds()

	s.addRoundKey(xKey, 0)
	for i := 1; i <= cycles; i++ {
		s.subBytes()
		s.shiftRows()
		if i < cycles {
			s.mixColumns()
		}
		s.addRoundKey(xKey, i)
	}

	out := make([]byte, variant.BlockSize)
	copy(out, s[:])
	return out, nil
}

// Decrypt performs one 16-byte block of AES decryption under the given
// expanded key. ShiftRows and SubBytes are applied in swapped order
// relative to Encrypt; this is equivalent because the two commute
// (spec.md §4.3).
func Decrypt(cipher []byte, xKey keyschedule.ExpandedKey, sz variant.Size) ([]byte, error) {
	s, err := newState(cipher)
	if err != nil {
		return nil, err
	}

	cycles := sz.Rounds()

	s.addRoundKey(xKey, cycles)
	for i := 1; i <= cycles; i++ {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(xKey, cycles-i)
		if i < cycles {
			s.invMixColumns()
		}
	}

	out := make([]byte, variant.BlockSize)
	copy(out, s[:])
	return out, nil
}

// Cycles returns the number of AES rounds for the given variant, exposed
// for callers (e.g. self-tests) that want to sanity-check round counts
// without importing internal/variant directly.
func Cycles(sz variant.Size) int {
	return sz.Rounds()
}

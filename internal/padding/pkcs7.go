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

// Package padding implements PKCS#7 padding for the ECB and CBC modes.
package padding

import (
	"errors"

	"github.com/wedkarz02/aesgo/internal/variant"
)

// ErrInvalidPadding is returned by Unpad when the trailing padding byte
// is out of range or the padding bytes aren't all equal to it. spec.md
// §7/§9 Open Question 2: the C and Go reference implementations this is
// based on don't check this and silently emit the over-long block; this
// implementation surfaces the error instead.
var ErrInvalidPadding = errors.New("padding: invalid PKCS#7 padding")

// Pad appends PKCS#7 padding to data, always adding between 1 and
// BlockSize bytes so that a data length already a multiple of the block
// size still gets a full padding block appended (spec.md §4.4).
func Pad(data []byte) []byte {
	padLen := variant.BlockSize - len(data)%variant.BlockSize

	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}

	return padded
}

// Unpad strips PKCS#7 padding, validating that the trailing byte is in
// 1..=BlockSize and that the last padLen bytes all equal it.
func Unpad(padded []byte) ([]byte, error) {
	if len(padded) == 0 || len(padded)%variant.BlockSize != 0 {
		return nil, ErrInvalidPadding
	}

	padLen := int(padded[len(padded)-1])
	if padLen < 1 || padLen > variant.BlockSize || padLen > len(padded) {
		return nil, ErrInvalidPadding
	}

	for _, b := range padded[len(padded)-padLen:] {
		if int(b) != padLen {
			return nil, ErrInvalidPadding
		}
	}

	return padded[:len(padded)-padLen], nil
}

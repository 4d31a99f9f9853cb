package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// decodeHex turns a contiguous hex string into bytes; an odd length or a
// non-hex character is fatal input per spec.md §7.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}

// decodeBase64 decodes standard Base64, tolerating embedded newlines the
// way line-wrapped input from this tool's own -obase64 output would
// contain.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 input: %w", err)
	}
	return b, nil
}

// encodeHex renders data as lowercase, unseparated hex (spec.md §6).
func encodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// base64LineWidth is the column at which encodeBase64 inserts a newline:
// 20 output groups of 4 characters each, i.e. 80 columns (spec.md §6).
const base64LineWidth = 80

// encodeBase64 renders data as standard Base64, wrapped at 80 columns.
func encodeBase64(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	var b strings.Builder
	for i := 0; i < len(encoded); i += base64LineWidth {
		end := i + base64LineWidth
		if end > len(encoded) {
			end = len(encoded)
		}
		b.WriteString(encoded[i:end])
		b.WriteByte('\n')
	}

	return b.String()
}

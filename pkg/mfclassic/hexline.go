package mfclassic

import (
	"encoding/hex"
	"strings"
)

const (
	BlockSize  = 16 // Bytes per block
	HexLineLen = 32 // Hex characters per block line
	NoData     = '-'
)

// HexLine is one block as 32 uppercase hex characters. A '-' stands for a
// nibble the reader could not recover (unknown key or unreadable block).
type HexLine string

func isHexLineChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'A' && c <= 'F', c >= 'a' && c <= 'f', c == NoData:
		return true
	}
	return false
}

// CheckHexLine reports KindMalformedHex if s is empty or contains a character
// outside [0-9A-Fa-f-], then KindWrongLength if s is not 32 characters.
// The returned error carries no position; callers fill it in.
func CheckHexLine(s string) error {
	if s == "" {
		return newError(KindMalformedHex, -1, -1, s)
	}
	for i := 0; i < len(s); i++ {
		if !isHexLineChar(s[i]) {
			return newError(KindMalformedHex, -1, -1, s)
		}
	}
	if len(s) != HexLineLen {
		return newError(KindWrongLength, -1, -1, s)
	}
	return nil
}

// NormalizeHexLine checks s and returns it uppercased.
func NormalizeHexLine(s string) (HexLine, error) {
	if err := CheckHexLine(s); err != nil {
		return "", err
	}
	return HexLine(strings.ToUpper(s)), nil
}

// HasPlaceholder reports whether any nibble is unknown.
func (l HexLine) HasPlaceholder() bool {
	return strings.IndexByte(string(l), NoData) >= 0
}

// Bytes decodes the line. ok is false if the line has placeholders or is not
// a full block.
func (l HexLine) Bytes() (b []byte, ok bool) {
	if len(l) != HexLineLen || l.HasPlaceholder() {
		return nil, false
	}
	b, err := hex.DecodeString(string(l))
	if err != nil {
		return nil, false
	}
	return b, true
}

func (l HexLine) String() string {
	return string(l)
}

func hexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

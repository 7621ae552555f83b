package mfclassic

import "fmt"

// Trailer is a sector trailer split into its fields, each kept as hex text
// so unknown nibbles survive. Access bits are not interpreted.
type Trailer struct {
	KeyA       string // 6 bytes
	AccessBits string // 4 bytes: 3 access condition bytes + general purpose byte
	KeyB       string // 6 bytes
}

// SplitTrailer splits a trailer line at its key and access condition
// boundaries.
func SplitTrailer(line HexLine) (Trailer, error) {
	if len(line) != HexLineLen {
		return Trailer{}, fmt.Errorf("trailer must be %d chars, got %d", HexLineLen, len(line))
	}
	s := string(line)
	return Trailer{KeyA: s[:acStart], AccessBits: s[acStart:acEnd], KeyB: s[acEnd:]}, nil
}

// KeyAKnown reports whether Key A was recovered.
func (t Trailer) KeyAKnown() bool {
	return !HexLine(t.KeyA).HasPlaceholder()
}

// KeyBKnown reports whether Key B was recovered.
func (t Trailer) KeyBKnown() bool {
	return !HexLine(t.KeyB).HasPlaceholder()
}

package mfclassic

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a dump parse or validation failure.
type ErrorKind int

const (
	KindMissingHeader     ErrorKind = iota + 1 // Data before any header, or an empty sector
	KindMalformedHeader                        // Header syntax, sector order, or a stray "*"
	KindInvalidSectorSize                      // Sector body is not 4 or 16 lines
	KindMalformedHex                           // Character outside [0-9A-Fa-f-]
	KindWrongLength                            // Line is not 32 characters
	KindNotValidated                           // View requested on an unvalidated dump
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingHeader:
		return "missing header"
	case KindMalformedHeader:
		return "malformed header"
	case KindInvalidSectorSize:
		return "invalid sector size"
	case KindMalformedHex:
		return "malformed hex"
	case KindWrongLength:
		return "wrong length"
	case KindNotValidated:
		return "not validated"
	default:
		return "unknown error"
	}
}

// Sentinel errors, one per kind. A *DumpError matches its kind's sentinel
// with errors.Is.
var (
	ErrMissingHeader     = &DumpError{Kind: KindMissingHeader, Line: -1, Sector: -1}
	ErrMalformedHeader   = &DumpError{Kind: KindMalformedHeader, Line: -1, Sector: -1}
	ErrInvalidSectorSize = &DumpError{Kind: KindInvalidSectorSize, Line: -1, Sector: -1}
	ErrMalformedHex      = &DumpError{Kind: KindMalformedHex, Line: -1, Sector: -1}
	ErrWrongLength       = &DumpError{Kind: KindWrongLength, Line: -1, Sector: -1}
	ErrNotValidated      = &DumpError{Kind: KindNotValidated, Line: -1, Sector: -1}
)

// DumpError is the single first-failure result of parsing or validating a dump.
type DumpError struct {
	Kind   ErrorKind
	Line   int    // 1-based line in the dump text or sector body, -1 if unknown
	Sector int    // Sector number from the header, -1 if unknown
	Text   string // Offending line or detail
}

func (e *DumpError) Error() string {
	msg := "dump: " + e.Kind.String()
	if e.Sector >= 0 {
		msg += fmt.Sprintf(" in sector %d", e.Sector)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Text != "" {
		msg += fmt.Sprintf(": %q", e.Text)
	}
	return msg
}

// Is reports whether target is a *DumpError of the same kind.
func (e *DumpError) Is(target error) bool {
	t, ok := target.(*DumpError)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, line, sector int, text string) *DumpError {
	return &DumpError{Kind: kind, Line: line, Sector: sector, Text: text}
}

// KindOf returns the kind of a dump error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var de *DumpError
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

// IsSectorSizeError checks if err reports a sector body that is not 4 or 16 lines.
func IsSectorSizeError(err error) bool {
	return KindOf(err) == KindInvalidSectorSize
}

// IsHexError checks if err reports an illegal character or a wrong line length.
func IsHexError(err error) bool {
	k := KindOf(err)
	return k == KindMalformedHex || k == KindWrongLength
}

// IsHeaderError checks if err reports a missing or malformed sector header.
func IsHeaderError(err error) bool {
	k := KindOf(err)
	return k == KindMissingHeader || k == KindMalformedHeader
}

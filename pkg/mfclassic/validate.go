package mfclassic

import "fmt"

// Status is the outcome of validating an edited dump, mirroring the codes the
// editor reports to the user.
type Status int

const (
	StatusOK              Status = iota // All blocks are fine
	StatusWrongBlockCount               // A sector body is not 4 or 16 lines
	StatusNonHexCharacter               // A line has a character outside [0-9A-Fa-f-]
	StatusWrongLineLength               // A line is not 32 characters
	StatusInvalid                       // Any other structural problem (headers)
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWrongBlockCount:
		return "at least one sector does not have 4 or 16 blocks"
	case StatusNonHexCharacter:
		return "at least one block has characters that are not hex or '-'"
	case StatusWrongLineLength:
		return "at least one block is not 16 bytes (32 characters)"
	default:
		return "invalid dump structure"
	}
}

// StatusOf maps a Parse or Validate error to a Status.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	switch KindOf(err) {
	case KindInvalidSectorSize:
		return StatusWrongBlockCount
	case KindMalformedHex:
		return StatusNonHexCharacter
	case KindWrongLength:
		return StatusWrongLineLength
	default:
		return StatusInvalid
	}
}

// SectorText is one sector as the editor presents it: the header is fixed,
// the body is free text a user may have changed. An unreadable sector must
// have an empty body.
type SectorText struct {
	Number     int
	Unreadable bool
	Body       string
}

// Texts returns the editable form of every sector in d.
func (d *Dump) Texts() []SectorText {
	out := make([]SectorText, len(d.Sectors))
	for i, s := range d.Sectors {
		out[i] = SectorText{Number: s.Number, Unreadable: s.Unreadable, Body: s.Body()}
	}
	return out
}

// Validate re-checks edited sectors and returns a new validated dump with
// uppercase block lines. Validation is all-or-nothing: the first violation
// is returned and nothing is accepted. Error lines are 1-based within the
// offending sector's body.
func Validate(sectors []SectorText) (*Dump, error) {
	if len(sectors) == 0 {
		return nil, newError(KindMissingHeader, -1, -1, "empty dump")
	}
	d := &Dump{Sectors: make([]Sector, 0, len(sectors))}
	prev := -1
	for _, st := range sectors {
		if st.Number < 0 {
			return nil, newError(KindMalformedHeader, -1, st.Number, HeaderLine(st.Number))
		}
		if st.Number < prev {
			return nil, newError(KindMalformedHeader, -1, st.Number, HeaderLine(st.Number))
		}
		prev = st.Number
		if st.Unreadable {
			if n := len(SplitLines(st.Body)); n > 0 {
				return nil, newError(KindInvalidSectorSize, 1, st.Number, fmt.Sprintf("%d blocks in unreadable sector", n))
			}
			d.Sectors = append(d.Sectors, unreadableSector(st.Number))
			continue
		}
		s, err := buildSector(st.Number, SplitLines(st.Body), 0)
		if err != nil {
			return nil, err
		}
		d.Sectors = append(d.Sectors, s)
	}
	d.validated = true
	return d, nil
}

// ValidateText parses and validates full dump text. Feeding the canonical
// text of the result back in yields the same text.
func ValidateText(text string) (*Dump, error) {
	return ParseText(text)
}

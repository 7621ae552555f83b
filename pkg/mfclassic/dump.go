package mfclassic

import (
	"strconv"
	"strings"
)

const (
	SmallSectorBlocks = 4  // Sectors 0-31
	LargeSectorBlocks = 16 // Sectors 32-39 on 4K tags

	headerPrefix = "+Sector: "
	headerMark   = '+'
	errorMark    = '*'
	errorLine    = "*"
)

// ValidSectorSize reports whether n is a MIFARE Classic sector size.
func ValidSectorSize(n int) bool {
	return n == SmallSectorBlocks || n == LargeSectorBlocks
}

// HeaderLine formats the header of sector number n.
func HeaderLine(n int) string {
	return headerPrefix + strconv.Itoa(n)
}

// Sector is one sector of a dump. An unreadable sector (no keys found or
// dead sector) has no blocks.
type Sector struct {
	Number     int
	Unreadable bool
	Blocks     []Block
}

func newSector(number int, lines []HexLine) Sector {
	s := Sector{Number: number, Blocks: make([]Block, len(lines))}
	for i, l := range lines {
		s.Blocks[i] = Block{Line: l, sector: number, index: i, size: len(lines)}
	}
	return s
}

func unreadableSector(number int) Sector {
	return Sector{Number: number, Unreadable: true}
}

// Header returns the sector's header line.
func (s Sector) Header() string {
	return HeaderLine(s.Number)
}

// Len returns the number of blocks.
func (s Sector) Len() int {
	return len(s.Blocks)
}

// Trailer returns the last block. ok is false for an unreadable sector.
func (s Sector) Trailer() (Block, bool) {
	if s.Unreadable || len(s.Blocks) == 0 {
		return Block{}, false
	}
	return s.Blocks[len(s.Blocks)-1], true
}

// Body returns the block lines joined by '\n', the text a user edits.
func (s Sector) Body() string {
	parts := make([]string, len(s.Blocks))
	for i, b := range s.Blocks {
		parts[i] = string(b.Line)
	}
	return strings.Join(parts, "\n")
}

// Dump is an ordered list of sectors in physical order. A Dump is never
// modified after construction; edits go through Parse or Validate, which
// return a new value.
type Dump struct {
	Sectors []Sector

	validated bool
}

// Validated reports whether the dump came out of Parse or Validate. Views
// refuse dumps assembled by hand.
func (d *Dump) Validated() bool {
	return d != nil && d.validated
}

// Lines returns the canonical line form of the dump.
func (d *Dump) Lines() []string {
	var lines []string
	for _, s := range d.Sectors {
		lines = append(lines, s.Header())
		if s.Unreadable {
			lines = append(lines, errorLine)
			continue
		}
		for _, b := range s.Blocks {
			lines = append(lines, string(b.Line))
		}
	}
	return lines
}

// String returns the canonical dump text, lines joined by '\n' with no
// trailing separator.
func (d *Dump) String() string {
	return strings.Join(d.Lines(), "\n")
}

// Equal reports structural equality of two dumps.
func (d *Dump) Equal(o *Dump) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.Sectors) != len(o.Sectors) {
		return false
	}
	for i := range d.Sectors {
		a, b := d.Sectors[i], o.Sectors[i]
		if a.Number != b.Number || a.Unreadable != b.Unreadable || len(a.Blocks) != len(b.Blocks) {
			return false
		}
		for j := range a.Blocks {
			if !strings.EqualFold(string(a.Blocks[j].Line), string(b.Blocks[j].Line)) {
				return false
			}
		}
	}
	return true
}

// Summary counts sectors and blocks by role.
type Summary struct {
	Sectors     int          `json:"sectors"`
	Unreadable  int          `json:"unreadable"`
	LargeSector int          `json:"large_sectors"`
	Blocks      int          `json:"blocks"`
	Roles       map[Role]int `json:"-"`
	Unknown     int          `json:"blocks_with_unknown_bytes"`
}

// Summary returns block and sector counts for d.
func (d *Dump) Summary() Summary {
	sum := Summary{Roles: make(map[Role]int)}
	for _, s := range d.Sectors {
		sum.Sectors++
		if s.Unreadable {
			sum.Unreadable++
			continue
		}
		if s.Len() == LargeSectorBlocks {
			sum.LargeSector++
		}
		for _, b := range s.Blocks {
			sum.Blocks++
			sum.Roles[b.Role()]++
			if b.Line.HasPlaceholder() {
				sum.Unknown++
			}
		}
	}
	return sum
}

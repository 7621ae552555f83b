package mfclassic

import (
	"strconv"
	"strings"
)

// Offsets of the access condition bytes within a sector trailer line.
const (
	acStart = 12
	acEnd   = 20
)

// largeSectorMark prefixes access conditions taken from a sector with more
// than 4 blocks.
const largeSectorMark = "*"

// ASCIIView returns every block line of every readable sector, one per line,
// with an empty line in place of each sector trailer. Headers are omitted.
func (d *Dump) ASCIIView() (string, error) {
	if !d.Validated() {
		return "", ErrNotValidated
	}
	var sb strings.Builder
	for _, s := range d.Sectors {
		for _, b := range s.Blocks {
			if b.Role() != RoleTrailer {
				sb.WriteString(string(b.Line))
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// AccessConditionView returns, per readable sector, the header line followed
// by the 4 access condition bytes of its trailer. The bytes of sectors with
// more than 4 blocks are prefixed with "*".
func (d *Dump) AccessConditionView() (string, error) {
	if !d.Validated() {
		return "", ErrNotValidated
	}
	var sb strings.Builder
	for _, s := range d.Sectors {
		t, ok := s.Trailer()
		if !ok {
			continue
		}
		sb.WriteString(s.Header())
		sb.WriteByte('\n')
		if s.Len() > SmallSectorBlocks {
			sb.WriteString(largeSectorMark)
		}
		sb.WriteString(string(t.Line[acStart:acEnd]))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// ValueBlockView returns a two line entry for every value block:
//
//	+Sector: <N>, Block: <index within sector>
//	<block line>
//
// An empty result means the dump has no value blocks.
func (d *Dump) ValueBlockView() (string, error) {
	if !d.Validated() {
		return "", ErrNotValidated
	}
	var sb strings.Builder
	for _, s := range d.Sectors {
		for _, b := range s.Blocks {
			if b.Role() != RoleValue {
				continue
			}
			sb.WriteString(s.Header())
			sb.WriteString(", Block: ")
			sb.WriteString(strconv.Itoa(b.Index()))
			sb.WriteByte('\n')
			sb.WriteString(string(b.Line))
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

package mfclassic

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitLines splits dump text on '\n', strips a trailing '\r' from each line
// and drops trailing empty lines.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ParseText parses newline separated dump text. See Parse.
func ParseText(text string) (*Dump, error) {
	return Parse(SplitLines(text))
}

// Parse builds a dump from its line form:
//
//	+Sector: <N>      header, N decimal and non-decreasing
//	*                 sector unreadable, directly after its header
//	<32 hex chars>    block line, 4 or 16 per sector ('-' = unknown nibble)
//
// The first problem found is returned as a *DumpError. A dump returned by
// Parse is validated and holds uppercase block lines.
func Parse(lines []string) (*Dump, error) {
	if len(lines) == 0 {
		return nil, newError(KindMissingHeader, -1, -1, "empty dump")
	}

	d := &Dump{}
	prev := -1
	i := 0
	for i < len(lines) {
		line := lines[i]
		if !isHeader(line) {
			if i > 0 && isErrorLine(line) {
				return nil, newError(KindMalformedHeader, i+1, prev, "unreadable marker without header")
			}
			return nil, newError(KindMissingHeader, i+1, prev, line)
		}
		n, err := parseHeader(line)
		if err != nil {
			return nil, newError(KindMalformedHeader, i+1, -1, line)
		}
		if n < prev {
			return nil, newError(KindMalformedHeader, i+1, n, fmt.Sprintf("sector %d after sector %d", n, prev))
		}
		prev = n
		i++

		if i < len(lines) && isErrorLine(lines[i]) {
			d.Sectors = append(d.Sectors, unreadableSector(n))
			i++
			continue
		}

		start := i
		for i < len(lines) && !isHeader(lines[i]) && !isErrorLine(lines[i]) {
			i++
		}
		if start == i && i < len(lines) {
			// Header directly followed by another header.
			return nil, newError(KindMissingHeader, i+1, n, "empty sector")
		}
		if i < len(lines) && isErrorLine(lines[i]) {
			return nil, newError(KindMalformedHeader, i+1, n, "unreadable marker after block data")
		}
		s, err := buildSector(n, lines[start:i], start)
		if err != nil {
			return nil, err
		}
		d.Sectors = append(d.Sectors, s)
	}
	d.validated = true
	return d, nil
}

// buildSector checks the body size, then each line in order. offset is the
// 0-based position of body[0] in the caller's text.
func buildSector(number int, body []string, offset int) (Sector, error) {
	if !ValidSectorSize(len(body)) {
		return Sector{}, newError(KindInvalidSectorSize, offset+1, number,
			fmt.Sprintf("%d blocks, want %d or %d", len(body), SmallSectorBlocks, LargeSectorBlocks))
	}
	lines := make([]HexLine, len(body))
	for j, raw := range body {
		l, err := NormalizeHexLine(raw)
		if err != nil {
			de := err.(*DumpError)
			de.Line = offset + j + 1
			de.Sector = number
			return Sector{}, de
		}
		lines[j] = l
	}
	return newSector(number, lines), nil
}

func isHeader(line string) bool {
	return len(line) > 0 && line[0] == headerMark
}

func isErrorLine(line string) bool {
	return len(line) > 0 && line[0] == errorMark
}

// parseHeader returns N from "+Sector: N".
func parseHeader(line string) (int, error) {
	num, ok := strings.CutPrefix(line, headerPrefix)
	if !ok {
		return 0, fmt.Errorf("header must start with %q", headerPrefix)
	}
	num = strings.TrimSpace(num)
	if num == "" || strings.IndexFunc(num, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("sector number %q is not a non-negative integer", num)
	}
	return strconv.Atoi(num)
}

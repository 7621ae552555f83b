/*
Package mfclassic models text dumps of MIFARE Classic tags: parsing, validation,
block classification and the derived views used by the dump tools.

# Dump Format

A dump is a sequence of lines separated by '\n' (a trailing '\r' per line and
trailing empty lines are ignored):

	+Sector: 0
	0A1B2C3D4E0804006263646566676869
	00000000000000000000000000000000
	00000000FFFFFFFF0000000001FE01FE
	FFFFFFFFFFFFFF078069FFFFFFFFFFFF
	+Sector: 1
	*

Header lines start with '+' and carry the decimal sector number. Numbers must not
decrease. A line starting with '*' directly after a header marks the sector as
unreadable (no keys found or dead sector); it has no blocks. Every other line is a
block: 32 characters from [0-9A-Fa-f-], where '-' stands for a nibble that could
not be read. Sectors have 4 blocks (sectors 0-31) or 16 blocks (sectors 32-39 of
4K tags). Output is always uppercase.

# Block Roles

Roles are computed from position and content, never stored:

	UID/manufacturer  sector 0, block 0
	Sector trailer    last block of the sector
	Value block       bytes match the value block layout
	Data block        anything else

The precedence is exactly that order. A value block at sector 0 block 0 is still
the UID block, and a trailer is never tested for value block shape.

Value block layout (16 bytes, value little-endian):

	[0:4]   value
	[4:8]   ^value
	[8:12]  value
	[12]    addr
	[13]    ^addr
	[14]    addr
	[15]    ^addr

Sector trailer layout:

	[0:6]   Key A
	[6:10]  access conditions (3 bytes) + general purpose byte
	[10:16] Key B

In hex characters the access conditions are at [12:20).

# Validation

Parse and Validate stop at the first problem and return a *DumpError. Its Kind
is one of KindMissingHeader, KindMalformedHeader, KindInvalidSectorSize,
KindMalformedHex or KindWrongLength. StatusOf maps errors to the editor's status
codes (wrong block count, non-hex character, wrong line length).

Character checks come before length checks, so "G" in a 31 character line
reports KindMalformedHex. Sector size is checked before any line of that sector.

# Views

ASCIIView, AccessConditionView and ValueBlockView read a validated Dump only.
A Dump built by hand, or an Editor with unvalidated edits, yields
ErrNotValidated. Unreadable sectors contribute no output, and an empty view is
not an error.

Access conditions of 16-block sectors are prefixed with '*'.
*/
package mfclassic

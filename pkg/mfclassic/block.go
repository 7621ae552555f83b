package mfclassic

// Role is the semantic role of a block, derived from its position and bytes.
type Role int

const (
	RoleData Role = iota
	RoleValue
	RoleTrailer
	RoleUIDManufacturer
)

func (r Role) String() string {
	switch r {
	case RoleData:
		return "data"
	case RoleValue:
		return "value"
	case RoleTrailer:
		return "trailer"
	case RoleUIDManufacturer:
		return "uid/manufacturer"
	default:
		return "unknown"
	}
}

// Classify returns the role of the block at position block of a sector with
// sectorSize blocks. sector is the physical sector number.
//
// Precedence: UID/manufacturer (sector 0, block 0) > sector trailer (last
// block) > value block > data block.
func Classify(sector, block, sectorSize int, line HexLine) Role {
	switch {
	case sector == 0 && block == 0:
		return RoleUIDManufacturer
	case block == sectorSize-1:
		return RoleTrailer
	case IsValueBlock(line):
		return RoleValue
	default:
		return RoleData
	}
}

// IsValueBlock reports whether line has value block shape:
//
//	b[0:4]  value V (little-endian)
//	b[4:8]  ^V
//	b[8:12] V
//	b[12] addr, b[13] ^addr, b[14] addr, b[15] ^addr
//
// Lines with unknown nibbles are never value blocks.
func IsValueBlock(line HexLine) bool {
	b, ok := line.Bytes()
	if !ok {
		return false
	}
	for i := 0; i < 4; i++ {
		if b[i] != b[i+8] || b[i]^0xFF != b[i+4] {
			return false
		}
	}
	return b[12] == b[14] && b[13] == b[15] && b[12]^0xFF == b[13]
}

// Block is one line of a sector body. Its role is computed from its position
// on every call and never cached.
type Block struct {
	Line   HexLine
	sector int // Physical sector number
	index  int // Position within the sector
	size   int // Blocks in the sector
}

// Index returns the block's position within its sector.
func (b Block) Index() int { return b.index }

// Role classifies the block.
func (b Block) Role() Role {
	return Classify(b.sector, b.index, b.size, b.Line)
}

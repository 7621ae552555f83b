package mfclassic

import (
	"encoding/binary"
	"fmt"
)

// ValueBlock is a decoded value block.
type ValueBlock struct {
	Value int32
	Addr  byte
}

// DecodeValueBlock returns the signed value and address byte of line.
func DecodeValueBlock(line HexLine) (ValueBlock, error) {
	if !IsValueBlock(line) {
		return ValueBlock{}, fmt.Errorf("not a value block: %s", line)
	}
	b, _ := line.Bytes()
	return ValueBlock{
		Value: int32(binary.LittleEndian.Uint32(b[0:4])),
		Addr:  b[12],
	}, nil
}

// EncodeValueBlock builds the value block line for value and addr.
func EncodeValueBlock(value int32, addr byte) HexLine {
	var b [BlockSize]byte
	v := uint32(value)
	binary.LittleEndian.PutUint32(b[0:4], v)
	binary.LittleEndian.PutUint32(b[4:8], ^v)
	binary.LittleEndian.PutUint32(b[8:12], v)
	b[12], b[13], b[14], b[15] = addr, ^addr, addr, ^addr
	return HexLine(hexUpper(b[:]))
}

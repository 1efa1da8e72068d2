package bitio

import (
	"encoding/binary"
	"fmt"
)

func AppendUint16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

func AppendUint32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// Uint16 reads a big-endian field at offset.
func Uint16(src []byte, offset int) (uint16, error) {
	if offset < 0 || len(src)-offset < 2 {
		return 0, fmt.Errorf("%w: need 2 bytes at offset %d, have %d", ErrShortBuffer, offset, len(src))
	}
	return binary.BigEndian.Uint16(src[offset:]), nil
}

// Uint32 reads a big-endian field at offset.
func Uint32(src []byte, offset int) (uint32, error) {
	if offset < 0 || len(src)-offset < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes at offset %d, have %d", ErrShortBuffer, offset, len(src))
	}
	return binary.BigEndian.Uint32(src[offset:]), nil
}

// Package bitio holds the bit and byte packing primitives shared by the
// codecs: a growable MSB-first bit buffer and big-endian field helpers.
package bitio

import (
	"errors"
	"fmt"
	"strings"
)

var ErrShortBuffer = errors.New("bitio: buffer too short")

// Buffer accumulates bits in order. Bit 0 is the most significant bit of the
// first backing byte, so Bytes() is the bit string right-padded with zeros.
type Buffer struct {
	data      []byte
	bitsCount int
}

func NewBuffer(sizeHint int) *Buffer {
	return &Buffer{data: make([]byte, 0, (sizeHint+7)/8)}
}

// FromBytes expands data into a buffer holding exactly length bits. Any bits
// past length are padding and are dropped.
func FromBytes(data []byte, length int) (*Buffer, error) {
	if length < 0 {
		return nil, fmt.Errorf("bitio: negative bit length %d", length)
	}
	needed := (length + 7) / 8
	if len(data) < needed {
		return nil, fmt.Errorf("%w: %d bits requested, %d available", ErrShortBuffer, length, len(data)*8)
	}
	bb := &Buffer{
		data:      make([]byte, needed),
		bitsCount: length,
	}
	copy(bb.data, data[:needed])
	if rem := length % 8; rem != 0 {
		bb.data[needed-1] &= 0xFF << (8 - rem)
	}
	return bb, nil
}

// ParseString builds a buffer from a string of '0' and '1' characters.
func ParseString(s string) (*Buffer, error) {
	bb := NewBuffer(len(s))
	for i, c := range s {
		switch c {
		case '0':
			bb.PushBit(0)
		case '1':
			bb.PushBit(1)
		default:
			return nil, fmt.Errorf("bitio: invalid bit character %q at %d", c, i)
		}
	}
	return bb, nil
}

func (bb *Buffer) PushBit(bit uint8) {
	if bb.bitsCount%8 == 0 {
		bb.data = append(bb.data, 0)
	}
	if bit&1 == 1 {
		bb.data[bb.bitsCount/8] |= 0x80 >> (bb.bitsCount % 8)
	}
	bb.bitsCount++
}

// PushBits appends the low nbits of value, most significant first.
func (bb *Buffer) PushBits(value uint64, nbits int) {
	for i := nbits - 1; i >= 0; i-- {
		bb.PushBit(uint8(value >> uint(i) & 1))
	}
}

func (bb *Buffer) Bit(i int) uint8 {
	return bb.data[i/8] >> (7 - i%8) & 1
}

func (bb *Buffer) Len() int {
	return bb.bitsCount
}

// Bytes packs the bits into a fresh slice, zero-padded to the byte boundary.
func (bb *Buffer) Bytes() []byte {
	out := make([]byte, len(bb.data))
	copy(out, bb.data)
	return out
}

func (bb *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(bb.bitsCount)
	for i := 0; i < bb.bitsCount; i++ {
		sb.WriteByte('0' + bb.Bit(i))
	}
	return sb.String()
}

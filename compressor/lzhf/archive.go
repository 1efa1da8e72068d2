// Package lzhf chains the LZSS and Huffman stages and stores the result in a
// self-describing archive:
//
//	offset  size  field
//	0       4     magic "LZHF"
//	4       4     Huffman bit length before padding, big-endian
//	8       4     serialized code table length N, big-endian
//	12      N     code table
//	12+N    M     Huffman bits, zero-padded to a byte boundary
package lzhf

import (
	"fmt"
	"math"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/bitio"
	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/huffman"
	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
)

var Magic = [4]byte{'L', 'Z', 'H', 'F'}

const headerSize = 12

// Archive is the parsed form of a packed buffer.
type Archive struct {
	BitLength uint32
	Table     huffman.CodeTable
	Payload   []byte
}

func (a *Archive) MarshalBinary() ([]byte, error) {
	table, err := a.Table.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, headerSize+len(table)+len(a.Payload))
	out = append(out, Magic[:]...)
	out = bitio.AppendUint32(out, a.BitLength)
	out = bitio.AppendUint32(out, uint32(len(table)))
	out = append(out, table...)
	return append(out, a.Payload...), nil
}

// ParseArchive validates the magic tag before looking at anything else.
func ParseArchive(data []byte) (*Archive, error) {
	if len(data) < len(Magic) || [4]byte(data[:4]) != Magic {
		return nil, fmt.Errorf("%w: bad magic tag", ErrMalformedArchive)
	}
	bitLength, err := bitio.Uint32(data, 4)
	if err != nil {
		return nil, fmt.Errorf("%w: missing bit length", ErrMalformedArchive)
	}
	tableLength, err := bitio.Uint32(data, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: missing table length", ErrMalformedArchive)
	}
	if uint64(tableLength) > uint64(len(data)-headerSize) {
		return nil, fmt.Errorf("%w: table length %d exceeds archive", ErrMalformedArchive, tableLength)
	}

	tableEnd := headerSize + int(tableLength)
	table, consumed, err := huffman.UnmarshalTable(data[headerSize:tableEnd])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
	}
	if consumed != int(tableLength) {
		return nil, fmt.Errorf("%w: table uses %d of %d declared bytes", ErrMalformedArchive, consumed, tableLength)
	}

	payload := data[tableEnd:]
	if uint64(len(payload))*8 < uint64(bitLength) {
		return nil, fmt.Errorf("%w: %d payload bytes cannot hold %d bits", ErrMalformedArchive, len(payload), bitLength)
	}
	return &Archive{
		BitLength: bitLength,
		Table:     table,
		Payload:   append([]byte(nil), payload...),
	}, nil
}

// Bits expands the payload to exactly BitLength bits, dropping the padding.
func (a *Archive) Bits() (*bitio.Buffer, error) {
	bits, err := bitio.FromBytes(a.Payload, int(a.BitLength))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
	}
	return bits, nil
}

// Pack runs LZSS over pixels, Huffman-codes the token stream and serializes
// the archive. A nil opts means lz.DefaultOptions().
func Pack(pixels []byte, opts *lz.Options) ([]byte, error) {
	archive, err := Build(pixels, opts)
	if err != nil {
		return nil, err
	}
	return archive.MarshalBinary()
}

// Build is Pack without the final serialization.
func Build(pixels []byte, opts *lz.Options) (*Archive, error) {
	return Encode(lz.Compress(pixels, opts))
}

// Encode runs only the Huffman stage over an existing LZSS token stream.
func Encode(tokens []byte) (*Archive, error) {
	bits, table, err := huffman.Encode(tokens)
	if err != nil {
		return nil, err
	}
	if uint64(bits.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bits", ErrArchiveTooLarge, bits.Len())
	}
	return &Archive{
		BitLength: uint32(bits.Len()),
		Table:     table,
		Payload:   bits.Bytes(),
	}, nil
}

// Unpack reverses Pack. If the LZSS stage finds a damaged token stream the
// bytes recovered so far are returned along with the error.
func Unpack(data []byte) ([]byte, error) {
	archive, err := ParseArchive(data)
	if err != nil {
		return nil, err
	}
	return archive.Expand()
}

// Expand decodes the Huffman payload and then the LZSS tokens.
func (a *Archive) Expand() ([]byte, error) {
	bits, err := a.Bits()
	if err != nil {
		return nil, err
	}
	tokens, err := huffman.Decode(bits, a.Table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
	}
	return lz.Decompress(tokens)
}

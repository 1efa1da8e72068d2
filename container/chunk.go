package container

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/bitio"
)

var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	TypeIHDR = "IHDR"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
)

// length, type and CRC around every chunk payload
const chunkOverhead = 12

type chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

func checksum(chunkType string, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	return crc.Sum32()
}

func appendChunk(dst []byte, chunkType string, data []byte) []byte {
	dst = bitio.AppendUint32(dst, uint32(len(data)))
	dst = append(dst, chunkType...)
	dst = append(dst, data...)
	return bitio.AppendUint32(dst, checksum(chunkType, data))
}

// readChunk parses the chunk starting at pos and returns the position just
// past it. Chunks running off the end of data give ErrTruncated.
func readChunk(data []byte, pos int) (chunk, int, error) {
	length, err := bitio.Uint32(data, pos)
	if err != nil || len(data)-pos < 8 {
		return chunk{}, pos, fmt.Errorf("%w: chunk header at offset %d", ErrTruncated, pos)
	}
	if uint64(length)+chunkOverhead > uint64(len(data)-pos) {
		return chunk{}, pos, fmt.Errorf("%w: chunk of %d bytes at offset %d", ErrTruncated, length, pos)
	}
	c := chunk{Type: string(data[pos+4 : pos+8])}
	body := pos + 8
	end := body + int(length)
	c.Data = data[body:end]
	c.CRC, _ = bitio.Uint32(data, end)

	if computed := checksum(c.Type, c.Data); computed != c.CRC {
		return chunk{}, pos, &ChecksumError{ChunkType: c.Type, Stored: c.CRC, Computed: computed}
	}
	return c, end + 4, nil
}

func hasSignature(data []byte) bool {
	return len(data) >= len(Signature) && bytes.Equal(data[:len(Signature)], Signature[:])
}

package huffman

import (
	"fmt"
	"slices"
	"strings"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/bitio"
	"github.com/boljen/go-bitmap"
)

const maxCodeLength = 64

// Code is a variable-length bit string held in the low Length bits of Bits,
// first bit most significant.
type Code struct {
	Bits   uint64
	Length int
}

func (c Code) append(bit uint64) Code {
	return Code{Bits: c.Bits<<1 | bit, Length: c.Length + 1}
}

func (c Code) String() string {
	var sb strings.Builder
	for i := c.Length - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(c.Bits>>uint(i)&1))
	}
	return sb.String()
}

// CodeTable maps every symbol present in the input to its code.
type CodeTable map[byte]Code

// Symbols returns the table's symbols in ascending order.
func (table CodeTable) Symbols() []byte {
	symbols := make([]byte, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// MarshalBinary serializes the table as a 16-bit entry count followed by
// symbol, bit length and the code bits right-padded to a whole byte, for each
// symbol in ascending order.
func (table CodeTable) MarshalBinary() ([]byte, error) {
	if len(table) > 256 {
		return nil, ErrTooManySymbols
	}
	out := bitio.AppendUint16(make([]byte, 0, 2+len(table)*3), uint16(len(table)))
	for _, symbol := range table.Symbols() {
		code := table[symbol]
		if code.Length == 0 {
			return nil, fmt.Errorf("%w: symbol 0x%02x", ErrZeroLengthCode, symbol)
		}
		if code.Length > maxCodeLength {
			return nil, fmt.Errorf("%w: symbol 0x%02x", ErrCodeTooLong, symbol)
		}
		out = append(out, symbol, byte(code.Length))
		codeBytes := (code.Length + 7) / 8
		aligned := code.Bits << uint(codeBytes*8-code.Length)
		for i := codeBytes - 1; i >= 0; i-- {
			out = append(out, byte(aligned>>uint(8*i)))
		}
	}
	return out, nil
}

// UnmarshalTable parses a serialized table from the start of data and reports
// how many bytes it used. Padding is stripped using each entry's stored bit
// length.
func UnmarshalTable(data []byte) (CodeTable, int, error) {
	count, err := bitio.Uint16(data, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: missing entry count", ErrTruncatedTable)
	}
	if count > 256 {
		return nil, 0, fmt.Errorf("%w: %d entries", ErrTooManySymbols, count)
	}

	table := make(CodeTable, count)
	seen := bitmap.New(256)
	pos := 2
	for entry := 0; entry < int(count); entry++ {
		if len(data)-pos < 2 {
			return nil, pos, fmt.Errorf("%w: entry %d of %d", ErrTruncatedTable, entry, count)
		}
		symbol, length := data[pos], int(data[pos+1])
		pos += 2

		switch {
		case length == 0:
			return nil, pos, fmt.Errorf("%w: symbol 0x%02x", ErrZeroLengthCode, symbol)
		case length > maxCodeLength:
			return nil, pos, fmt.Errorf("%w: symbol 0x%02x has %d bits", ErrCodeTooLong, symbol, length)
		case seen.Get(int(symbol)):
			return nil, pos, fmt.Errorf("%w: 0x%02x", ErrDuplicateSymbol, symbol)
		}
		seen.Set(int(symbol), true)

		codeBytes := (length + 7) / 8
		if len(data)-pos < codeBytes {
			return nil, pos, fmt.Errorf("%w: code bits of symbol 0x%02x", ErrTruncatedTable, symbol)
		}
		var aligned uint64
		for _, b := range data[pos : pos+codeBytes] {
			aligned = aligned<<8 | uint64(b)
		}
		pos += codeBytes
		table[symbol] = Code{
			Bits:   aligned >> uint(codeBytes*8-length),
			Length: length,
		}
	}
	return table, pos, nil
}

// Package huffman implements a static, per-call Huffman coder over bytes: a
// frequency table, an arena-backed tree, a serializable code table and the
// bitstream encoder and decoder.
package huffman

import (
	"fmt"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/bitio"
)

// FrequencyTable counts occurrences of each byte value.
type FrequencyTable [256]uint64

func Frequencies(data []byte) *FrequencyTable {
	freq := new(FrequencyTable)
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// EncodedLength is the bit length of data encoded with table, the sum of code
// length times frequency over all symbols.
func EncodedLength(freq *FrequencyTable, table CodeTable) uint64 {
	var total uint64
	for symbol, code := range table {
		total += freq[symbol] * uint64(code.Length)
	}
	return total
}

// Encode builds a fresh tree for data and returns the concatenated codes
// together with the table needed to decode them. Empty input gives an empty
// bit buffer and an empty table.
func Encode(data []byte) (*bitio.Buffer, CodeTable, error) {
	freq := Frequencies(data)
	table, err := BuildTree(freq).Codes()
	if err != nil {
		return nil, nil, err
	}

	var lookup [256]Code
	for symbol, code := range table {
		lookup[symbol] = code
	}
	bits := bitio.NewBuffer(int(EncodedLength(freq, table)))
	for _, symbol := range data {
		code := lookup[symbol]
		bits.PushBits(code.Bits, code.Length)
	}
	return bits, table, nil
}

// decodeNode is a trie node rebuilt from a code table. Index 0 is the root
// and is never a child, so a zero child means "no edge".
type decodeNode struct {
	children [2]int
	symbol   byte
	isLeaf   bool
}

func buildDecoder(table CodeTable) ([]decodeNode, error) {
	nodes := make([]decodeNode, 1, 2*len(table))
	for _, symbol := range table.Symbols() {
		code := table[symbol]
		if code.Length == 0 {
			return nil, fmt.Errorf("%w: symbol 0x%02x", ErrZeroLengthCode, symbol)
		}
		current := 0
		for i := code.Length - 1; i >= 0; i-- {
			if nodes[current].isLeaf {
				return nil, fmt.Errorf("%w: code of 0x%02x extends another code", ErrNotPrefixFree, symbol)
			}
			bit := code.Bits >> uint(i) & 1
			next := nodes[current].children[bit]
			if next == 0 {
				nodes = append(nodes, decodeNode{})
				next = len(nodes) - 1
				nodes[current].children[bit] = next
			}
			current = next
		}
		if nodes[current].isLeaf || nodes[current].children != [2]int{} {
			return nil, fmt.Errorf("%w: code of 0x%02x is a prefix of another code", ErrNotPrefixFree, symbol)
		}
		nodes[current].isLeaf = true
		nodes[current].symbol = symbol
	}
	return nodes, nil
}

// Decode consumes bits one at a time, emitting a byte whenever the bits read
// since the last emission form a code in table. Trailing bits that do not
// complete a code are ignored. A bit sequence that cannot be the start of any
// code stops decoding with ErrInvalidCode and the bytes decoded so far.
func Decode(bits *bitio.Buffer, table CodeTable) ([]byte, error) {
	if bits == nil || bits.Len() == 0 || len(table) == 0 {
		return []byte{}, nil
	}
	nodes, err := buildDecoder(table)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, bits.Len()/8+1)
	current := 0
	for i := 0; i < bits.Len(); i++ {
		current = nodes[current].children[bits.Bit(i)]
		if current == 0 {
			return out, fmt.Errorf("%w: at bit %d", ErrInvalidCode, i)
		}
		if nodes[current].isLeaf {
			out = append(out, nodes[current].symbol)
			current = 0
		}
	}
	return out, nil
}

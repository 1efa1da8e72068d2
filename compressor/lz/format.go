package lz

// Token stream constants.
const (
	LiteralTag = 0x00 // tag byte followed by one raw byte
	MatchTag   = 0x01 // tag byte followed by (offset<<4)|(length-3), big-endian

	WindowSize     = 4096 // default sliding window
	MaxOffset      = 4095 // 12-bit offset field
	MinMatchLength = 3    // shorter matches cost more than two literals
	MaxMatchLength = 18   // 4-bit length field plus the bias
	LookaheadSize  = 15   // default lookahead bound

	literalTokenSize = 2
	matchTokenSize   = 3
)

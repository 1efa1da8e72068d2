package lz_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/FitrahHaque/Pixel-Compression-Engine/compressor/lz"
)

var benchInput = bytes.Repeat([]byte{12, 40, 200, 12, 40, 201, 13, 41, 200, 0, 0, 0}, 2048)

func BenchmarkCompress(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lz.Compress(benchInput, nil)
	}
}

func BenchmarkCompressWindowSizes(b *testing.B) {
	for _, window := range []int{64, 256, 1024, 4096} {
		opts := &lz.Options{WindowSize: window, Lookahead: lz.LookaheadSize}
		b.Run(fmt.Sprintf("Window=%d", window), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lz.Compress(benchInput, opts)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	compressed := lz.Compress(benchInput, nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lz.Decompress(compressed)
	}
}

package engine

// Ratio is compressed size over original size; 0 for an empty original.
func Ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return float64(compressed) / float64(original)
}

// SpaceSavings is the percentage of the original removed by compression.
// It goes negative when the output is larger than the input.
func SpaceSavings(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return (1 - Ratio(original, compressed)) * 100
}

type Stats struct {
	Original   int
	Compressed int
}

func (s Stats) Ratio() float64 {
	return Ratio(s.Original, s.Compressed)
}

func (s Stats) SpaceSavings() float64 {
	return SpaceSavings(s.Original, s.Compressed)
}

func (s *Stats) Add(other Stats) {
	s.Original += other.Original
	s.Compressed += other.Compressed
}

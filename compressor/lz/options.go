package lz

// Options configures the match finder.
type Options struct {
	// WindowSize is how far back the match finder looks. Offsets past
	// MaxOffset are never emitted even when the window is wider.
	WindowSize int
	// Lookahead caps the match length; values above MaxMatchLength are clamped.
	Lookahead int
}

func DefaultOptions() *Options {
	return &Options{
		WindowSize: WindowSize,
		Lookahead:  LookaheadSize,
	}
}

func (o *Options) window() int {
	if o.WindowSize <= 0 {
		return 0
	}
	return o.WindowSize
}

func (o *Options) lookahead() int {
	switch {
	case o.Lookahead <= 0:
		return 0
	case o.Lookahead > MaxMatchLength:
		return MaxMatchLength
	}
	return o.Lookahead
}

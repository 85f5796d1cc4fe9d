package gapbuffer

// DefaultMinimumGapLength is the minimum number of free cells kept around
// the edit point when a buffer is not told otherwise.
const DefaultMinimumGapLength = 8

// Option configures a Buffer during construction.
type Option func(*Buffer)

// WithMinimumGapLength sets the minimum gap length maintained around the
// edit point. A larger gap means fewer reallocations for editors that make
// many small localized edits in a row, at the cost of more unused memory.
func WithMinimumGapLength(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.minGap = n
		}
	}
}

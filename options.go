package textbuf

import "github.com/dshills/textbuf/gapbuffer"

type config struct {
	initial      string
	gapOpts      []gapbuffer.Option
	marksEnabled bool
}

func newConfig(opts []Option) config {
	cfg := config{marksEnabled: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a Storage during construction.
type Option func(*config)

// WithInitialText seeds the storage with s instead of starting empty.
func WithInitialText(s string) Option {
	return func(c *config) { c.initial = s }
}

// WithMinimumGapLength sets the gap-buffer engine's minimum gap length.
func WithMinimumGapLength(n int) Option {
	return func(c *config) { c.gapOpts = append(c.gapOpts, gapbuffer.WithMinimumGapLength(n)) }
}

// WithMarksDisabled configures the storage to reject every mark
// operation and every sourceMark-relative call with ErrMarksUnsupported,
// the error kind the gapbuffer package defines for marks used without a
// registry (a plain gapbuffer.Buffer takes no mark arguments at all).
func WithMarksDisabled() Option {
	return func(c *config) { c.marksEnabled = false }
}

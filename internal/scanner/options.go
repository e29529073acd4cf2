package scanner

import "github.com/go-kit/log"

// DefaultMaxLineLength bounds how far a single step may scan along one line.
const DefaultMaxLineLength = 1 << 20

type config struct {
	logger        log.Logger
	maxLineLength int
}

func defaultConfig() config {
	return config{
		logger:        log.NewNopLogger(),
		maxLineLength: DefaultMaxLineLength,
	}
}

// Option configures a Scanner.
type Option func(*config)

// WithLogger sets the logger used for debug tracing of state transitions.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxLineLength sets the longest line, in bytes, the scanner accepts.
// A value <= 0 disables the limit.
func WithMaxLineLength(n int) Option {
	return func(c *config) {
		c.maxLineLength = n
	}
}

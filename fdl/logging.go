package fdl

import "github.com/fdlang/fdl/log"

// config holds per-call parsing options.
type config struct {
	logger log.Logger
}

// Option applies a configuration option to a Load or Parse call.
type Option func(*config)

// WithLogger installs the logger used for trace-level diagnostics emitted
// while loading. The zero Logger discards everything, so parsing is silent
// by default.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func makeConfig(opts ...Option) config {
	var c config

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

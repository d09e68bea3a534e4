package log

// Option transforms a logger configuration, returning the result.
type Option func(config) config

// apply folds opts over cfg in order. Later options win.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

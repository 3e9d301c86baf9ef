package render

import "github.com/go-logr/logr"

const defaultMaxDepth = 16

type config struct {
	log      logr.Logger
	maxDepth int
}

// Option configures a renderer.
type Option func(*config)

// WithLogger sets the logger used for debug traces.
func WithLogger(logger logr.Logger) Option {
	return func(c *config) {
		c.log = logger
	}
}

// WithMaxDepth limits how deep Tree descends into child groups.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		log:      logr.Discard(),
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

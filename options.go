package automaton

import "github.com/go-logr/logr"

const defaultClassPrefix = "Q"

type options struct {
	logger      logr.Logger
	classPrefix string
}

type Option func(*options)

// WithLogger Sets the logger used to trace pruning and refinement. Per-round
// detail is logged at V(1). The default discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClassPrefix Sets the prefix of the canonical class names, "Q" by default.
func WithClassPrefix(prefix string) Option {
	return func(o *options) {
		o.classPrefix = prefix
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger:      logr.Discard(),
		classPrefix: defaultClassPrefix,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

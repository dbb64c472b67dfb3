package symbolic

import (
	"github.com/apex/log"

	"github.com/appsworld/swiftsym/pkg/swift/node"
)

type Option func(*options)

type options struct {
	logger    log.Interface
	pool      *node.Pool
	qualified bool
	exclusive bool
}

// WithLogger sets the logger used for skipped references.
func WithLogger(l log.Interface) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPool sets the pool that leaves of decoded trees are interned in.
func WithPool(p *node.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithQualifiedNames prefixes resolved context names with their parents.
func WithQualifiedNames() Option {
	return func(o *options) {
		o.qualified = true
	}
}

// WithExclusivePool promises that the decoder is the only user of its pool,
// so interning can skip locking. Without WithPool the decoder gets a private pool.
func WithExclusivePool() Option {
	return func(o *options) {
		o.exclusive = true
	}
}

func buildOptions(opts ...Option) options {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = log.Log
	}
	if cfg.pool == nil {
		if cfg.exclusive {
			cfg.pool = node.NewPool()
		} else {
			cfg.pool = node.Default()
		}
	}
	return cfg
}

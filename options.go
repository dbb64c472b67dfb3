package swiftsym

import (
	"runtime"

	"github.com/apex/log"

	"github.com/appsworld/swiftsym/pkg/swift/node"
	"github.com/appsworld/swiftsym/pkg/swift/symbolic"
)

type Option func(*options)

type options struct {
	logger      log.Interface
	pool        *node.Pool
	qualified   bool
	exclusive   bool
	concurrency int
}

// WithLogger sets the logger for the file and its decoder.
func WithLogger(l log.Interface) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPool sets the pool decoded trees are interned in. The default is node.Default().
func WithPool(p *node.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithQualifiedNames qualifies resolved type names with their parent contexts.
func WithQualifiedNames() Option {
	return func(o *options) {
		o.qualified = true
	}
}

// WithExclusivePool gives the file a pool only it uses and interns without
// locking. DecodeAll runs sequentially on such a file.
func WithExclusivePool() Option {
	return func(o *options) {
		o.exclusive = true
	}
}

// WithConcurrency bounds the number of names DecodeAll decodes at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
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
	if cfg.exclusive {
		if cfg.pool == nil {
			cfg.pool = node.NewPool()
		}
		cfg.concurrency = 1
	}
	if cfg.pool == nil {
		cfg.pool = node.Default()
	}
	if cfg.concurrency <= 0 {
		cfg.concurrency = runtime.GOMAXPROCS(0)
	}
	return cfg
}

func (o options) decoderOptions() []symbolic.Option {
	opts := []symbolic.Option{
		symbolic.WithLogger(o.logger),
		symbolic.WithPool(o.pool),
	}
	if o.qualified {
		opts = append(opts, symbolic.WithQualifiedNames())
	}
	if o.exclusive {
		opts = append(opts, symbolic.WithExclusivePool())
	}
	return opts
}

package trainer

import "github.com/sign-language-processing/complex-tokenization-go/merge"

// Options holds the trainer's configuration: the merge enumerator's Config
// plus the trainer-level OnlyTokens selection filter. Like merge.Config, it is built through functional options
// rather than threaded as process-wide globals.
type Options struct {
	Config     merge.Config
	OnlyTokens bool
}

// Option mutates Options under construction.
type Option func(*Options)

// WithConfig overrides the enumerator Config (default: merge.NewConfig()'s
// defaults).
func WithConfig(cfg merge.Config) Option {
	return func(o *Options) { o.Config = cfg }
}

// WithOnlyTokens sets the OnlyTokens selection filter. When true (the
// default), candidates containing any non-Token element are dropped before
// scoring.
func WithOnlyTokens(only bool) Option {
	return func(o *Options) { o.OnlyTokens = only }
}

// NewOptions returns Options initialized with defaults (merge.NewConfig's
// defaults, OnlyTokens=true), then applies each opt in order.
func NewOptions(opts ...Option) (Options, error) {
	cfg, err := merge.NewConfig()
	if err != nil {
		return Options{}, err
	}
	o := Options{Config: cfg, OnlyTokens: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o, nil
}

package merge

// Config is an explicit, immutable replacement for process-wide merge
// flags. Build one with NewConfig and any number of Option values.
type Config struct {
	// MaxMergeSize is the upper bound on candidate arity, 2 <= MaxMergeSize.
	MaxMergeSize int

	// OnlyMinimalMerges, when true, forbids Sequence candidates from
	// crossing a non-Token child.
	OnlyMinimalMerges bool

	// UseSingletons enables Vertex interning (package intern) as a
	// performance optimization. Interning is observationally neutral: it
	// never changes which candidates are enumerated or which merge is
	// selected.
	UseSingletons bool
}

// Option mutates a Config under construction. Later options override
// earlier ones.
type Option func(*Config)

// WithMaxMergeSize sets the candidate-arity upper bound.
func WithMaxMergeSize(n int) Option {
	return func(c *Config) { c.MaxMergeSize = n }
}

// WithOnlyMinimalMerges sets the minimality gate flag.
func WithOnlyMinimalMerges(only bool) Option {
	return func(c *Config) { c.OnlyMinimalMerges = only }
}

// WithUseSingletons sets the interning flag.
func WithUseSingletons(use bool) Option {
	return func(c *Config) { c.UseSingletons = use }
}

// NewConfig returns a Config initialized with defaults (MaxMergeSize=3,
// OnlyMinimalMerges=true, UseSingletons=true), then applies each opt in
// order. It returns ErrMaxMergeSizeTooSmall if the resulting MaxMergeSize
// is below 2.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		MaxMergeSize:      3,
		OnlyMinimalMerges: true,
		UseSingletons:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxMergeSize < 2 {
		return Config{}, ErrMaxMergeSizeTooSmall
	}
	return cfg, nil
}

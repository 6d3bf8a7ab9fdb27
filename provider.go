package arena

// Provider supplies and reclaims the backing regions arenas are built on.
// Acquire must return a slice of exactly n bytes; Release is handed back
// the same slice Acquire returned.
type Provider interface {
	Acquire(n int) ([]byte, error)
	Release(region []byte)
}

// CopyFunc is the block-copy primitive used by Copy. It must copy
// min(len(dst), len(src)) bytes and return the count, like the builtin.
type CopyFunc func(dst, src []byte) int

// HeapProvider is the default Provider, backed by the Go heap. Released
// regions are left to the garbage collector.
type HeapProvider struct{}

func (HeapProvider) Acquire(n int) ([]byte, error) { return make([]byte, n), nil }

func (HeapProvider) Release([]byte) {}

type config struct {
	provider Provider
	copyFn   CopyFunc
	defAlign int
}

// Option configures an arena at creation time.
type Option func(*config)

// WithProvider substitutes the memory provider used to acquire and release
// the backing region.
func WithProvider(p Provider) Option {
	return func(c *config) { c.provider = p }
}

// WithCopyFunc substitutes the block-copy primitive used by Copy.
func WithCopyFunc(fn CopyFunc) Option {
	return func(c *config) { c.copyFn = fn }
}

// WithDefaultAlignment sets the alignment applied by the plain Alloc entry
// point. Must be a positive power of two; 1 (the factory default) means
// Alloc never pads.
func WithDefaultAlignment(alignment int) Option {
	return func(c *config) { c.defAlign = alignment }
}

func newConfig(opts []Option) (config, error) {
	cfg := config{
		provider: HeapProvider{},
		copyFn:   func(dst, src []byte) int { return copy(dst, src) },
		defAlign: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.provider == nil {
		cfg.provider = HeapProvider{}
	}
	if cfg.copyFn == nil {
		cfg.copyFn = func(dst, src []byte) int { return copy(dst, src) }
	}
	if cfg.defAlign <= 0 || cfg.defAlign&(cfg.defAlign-1) != 0 {
		return cfg, ErrBadAlignment
	}
	return cfg, nil
}

package buffer

// PoolConfig controls which buffers a Pool keeps for reuse.
type PoolConfig struct {
	// MaxRetainedCapacity is the largest capacity Put will keep.
	// Larger buffers are released instead. Zero means no limit.
	MaxRetainedCapacity int
	// MinCapacity is the capacity freshly allocated buffers start with.
	MinCapacity int
}

// PoolOption mutates a PoolConfig.
type PoolOption func(*PoolConfig)

// DefaultPoolConfig returns a configuration that retains buffers of up to
// 1<<16 slots and allocates new buffers lazily.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxRetainedCapacity: 1 << 16,
		MinCapacity:         0,
	}
}

// WithMaxRetainedCapacity sets the largest capacity kept by Put.
// Zero disables the limit.
func WithMaxRetainedCapacity(n int) PoolOption {
	return func(cfg *PoolConfig) {
		if n >= 0 {
			cfg.MaxRetainedCapacity = n
		}
	}
}

// WithMinCapacity sets the capacity of newly allocated pool buffers.
func WithMinCapacity(n int) PoolOption {
	return func(cfg *PoolConfig) {
		if n > 0 {
			cfg.MinCapacity = n
		}
	}
}

// ApplyPoolOptions applies zero or more options to the default config.
func ApplyPoolOptions(opts ...PoolOption) PoolConfig {
	cfg := DefaultPoolConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse to reduce allocation churn
// when buffers of similar size are created and dropped repeatedly.
// A Pool is safe for concurrent use; the buffers it hands out are not.
type Pool[T any] struct {
	pool sync.Pool
	cfg  PoolConfig
}

// NewPool returns a Pool ready for use.
func NewPool[T any](opts ...PoolOption) *Pool[T] {
	p := &Pool[T]{cfg: ApplyPoolOptions(opts...)}
	p.pool.New = func() any {
		return NewWithCapacity[T](0, p.cfg.MinCapacity)
	}
	return p
}

// Config returns the configuration the pool was built with.
func (p *Pool[T]) Config() PoolConfig {
	return p.cfg
}

// Get returns a Buffer with the requested length. All elements are zero.
// Callers should return it via Put when done.
func (p *Pool[T]) Get(length int) (*Buffer[T], error) {
	b := p.pool.Get().(*Buffer[T])
	// Drop whatever the previous user left behind before growing, so
	// the relocation in Resize copies nothing.
	_ = b.Resize(0)
	if err := b.Resize(length); err != nil {
		p.pool.Put(b)
		return nil, err
	}
	return b, nil
}

// Put returns a Buffer to the pool for reuse. Buffers larger than the
// configured retention limit are released instead.
// The caller must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	if limit := p.cfg.MaxRetainedCapacity; limit > 0 && b.Cap() > limit {
		b.Release()
		return
	}
	p.pool.Put(b)
}

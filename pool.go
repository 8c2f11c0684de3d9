package recipepdf

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps renderers, which matters for Chrome (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// RendererPool manages Renderer instances for parallel rendering.
// Each renderer owns its backend (one browser per renderer for "chrome").
// Renderers are created lazily on first acquire to avoid startup delay.
type RendererPool struct {
	size      int
	opts      []Option
	renderers []*Renderer
	idle      chan *Renderer
	done      chan struct{}
	mu        sync.Mutex
	created   int
	closed    bool
}

// NewRendererPool creates a pool with capacity for n renderers built with opts.
func NewRendererPool(n int, opts ...Option) *RendererPool {
	if n < 1 {
		n = 1
	}

	return &RendererPool{
		size:      n,
		opts:      opts,
		renderers: make([]*Renderer, 0, n),
		idle:      make(chan *Renderer, n),
		done:      make(chan struct{}),
	}
}

// Acquire gets a renderer from the pool, creating one if needed.
// Blocks if all renderers are in use. Returns ErrPoolClosed once Close
// has been called, including to callers already waiting.
func (p *RendererPool) Acquire() (*Renderer, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}

	select {
	case r := <-p.idle:
		p.mu.Unlock()
		return r, nil
	default:
	}

	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return p.create()
	}
	p.mu.Unlock()

	// All renderers created, wait for one to be released
	select {
	case r := <-p.idle:
		return r, nil
	case <-p.done:
		return nil, ErrPoolClosed
	}
}

// create builds a renderer outside the lock and registers it, unless the
// pool was closed meanwhile.
func (p *RendererPool) create() (*Renderer, error) {
	r, err := NewRenderer(p.opts...)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.created--
		return nil, err
	}
	if p.closed {
		_ = r.Close()
		return nil, ErrPoolClosed
	}
	p.renderers = append(p.renderers, r)
	return r, nil
}

// Release returns a renderer to the pool. After Close it is a no-op; the
// renderer was already closed with the pool.
func (p *RendererPool) Release(r *Renderer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || r == nil {
		return
	}
	// idle holds every renderer the pool ever created, so this only drops
	// a renderer released twice.
	select {
	case p.idle <- r:
	default:
	}
}

// Close releases all backend resources and wakes blocked Acquire calls.
// Returns an aggregated error if multiple renderers fail to close.
func (p *RendererPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.done)
	renderers := p.renderers
	p.mu.Unlock()

	var errs []error
	for _, r := range renderers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *RendererPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}

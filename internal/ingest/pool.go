package ingest

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Handler processes one frame.
type Handler interface {
	Handle(ctx context.Context, f Frame) error
}

// Pool runs a fixed number of workers over a bounded frame queue.
// Transports Submit frames; Run consumes them until the context is
// cancelled or the pool is closed and drained.
type Pool struct {
	handler Handler
	workers int
	queue   chan Frame
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool

	rejected atomic.Uint64
}

// NewPool creates a pool. workers and queueSize are clamped to at least 1.
func NewPool(h Handler, workers, queueSize int, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		handler: h,
		workers: workers,
		queue:   make(chan Frame, queueSize),
		logger:  logger.With("component", "pool"),
	}
}

// Submit enqueues f without blocking. It returns false if the queue is
// full or the pool is closed; the frame is then dropped.
func (p *Pool) Submit(f Frame) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.queue <- f:
		return true
	default:
		if n := p.rejected.Add(1); n == 1 || n%100 == 0 {
			p.logger.Warn("queue full, frame dropped", "source", f.Source, "rejected", n)
		}
		return false
	}
}

// Run starts the workers and blocks until they exit.
func (p *Pool) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < p.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case f, ok := <-p.queue:
					if !ok {
						return nil
					}
					// Failures are logged by the handler; the frame is discarded.
					_ = p.handler.Handle(ctx, f)
				}
			}
		})
	}
	return g.Wait()
}

// Close stops accepting frames. Workers drain what is queued, then Run returns.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
}

// Rejected returns the number of frames refused because the queue was full.
func (p *Pool) Rejected() uint64 { return p.rejected.Load() }

package mdexport

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps automatic sizing; rendering is CPU-bound.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for the caller's own goroutines.
	cpuDivisor = 2
)

// Renderer runs parse + inline for one request. Implementations produce
// identical output; they differ only in where the work happens.
type Renderer interface {
	Render(ctx context.Context, req RenderRequest) (string, error)
	Close() error
}

// Compile-time interface checks.
var (
	_ Renderer = (*LocalRenderer)(nil)
	_ Renderer = (*RenderPool)(nil)
)

// LocalRenderer renders in the calling goroutine.
type LocalRenderer struct {
	conv *Converter
}

// NewLocalRenderer wraps conv.
func NewLocalRenderer(conv *Converter) *LocalRenderer {
	return &LocalRenderer{conv: conv}
}

// Render runs the pipeline synchronously.
func (l *LocalRenderer) Render(ctx context.Context, req RenderRequest) (string, error) {
	return l.conv.Render(ctx, req)
}

// Close is a no-op.
func (l *LocalRenderer) Close() error { return nil }

type renderJob struct {
	id  string
	req RenderRequest
}

type renderReply struct {
	id   string
	html string
	err  error
}

// RenderPool hands requests to a fixed set of worker goroutines. Each
// request is tagged with a uuid; a dispatcher routes worker replies back
// to the waiting caller by that id. After Close, Render falls back to the
// local path transparently.
type RenderPool struct {
	conv    *Converter
	local   *LocalRenderer
	logger  *slog.Logger
	size    int
	jobs    chan renderJob
	replies chan renderReply

	// state guards closed and sends on jobs.
	state  sync.RWMutex
	closed bool

	pendingMu sync.Mutex
	pending   map[string]chan renderReply

	workers    sync.WaitGroup
	dispatched chan struct{}
}

// NewRenderPool starts n workers (at least one) and the reply dispatcher.
func NewRenderPool(conv *Converter, n int) *RenderPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}

	p := &RenderPool{
		conv:       conv,
		local:      NewLocalRenderer(conv),
		logger:     conv.cfg.logger,
		size:       n,
		jobs:       make(chan renderJob, n),
		replies:    make(chan renderReply, n),
		pending:    make(map[string]chan renderReply),
		dispatched: make(chan struct{}),
	}

	for i := 0; i < n; i++ {
		p.workers.Add(1)
		go p.work()
	}
	go p.dispatch()

	p.logger.Debug("render pool started", "workers", n)
	return p
}

func (p *RenderPool) work() {
	defer p.workers.Done()
	for job := range p.jobs {
		html, err := p.conv.Render(context.Background(), job.req)
		p.replies <- renderReply{id: job.id, html: html, err: err}
	}
}

func (p *RenderPool) dispatch() {
	defer close(p.dispatched)
	for reply := range p.replies {
		if ch := p.untrack(reply.id); ch != nil {
			ch <- reply
		}
	}
}

func (p *RenderPool) track(id string) chan renderReply {
	ch := make(chan renderReply, 1)
	p.pendingMu.Lock()
	p.pending[id] = ch
	p.pendingMu.Unlock()
	return ch
}

// untrack removes and returns the reply channel for id, or nil when the
// caller already gave up.
func (p *RenderPool) untrack(id string) chan renderReply {
	p.pendingMu.Lock()
	defer p.pendingMu.Unlock()
	ch := p.pending[id]
	delete(p.pending, id)
	return ch
}

// Render submits req to a worker and waits for its reply. ctx bounds only
// the wait; a request already taken by a worker still runs to completion.
func (p *RenderPool) Render(ctx context.Context, req RenderRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.state.RLock()
	if p.closed {
		p.state.RUnlock()
		return p.local.Render(ctx, req)
	}

	id := uuid.NewString()
	reply := p.track(id)
	select {
	case p.jobs <- renderJob{id: id, req: req}:
		p.state.RUnlock()
	case <-ctx.Done():
		p.state.RUnlock()
		p.untrack(id)
		return "", ctx.Err()
	}

	select {
	case r := <-reply:
		return r.html, r.err
	case <-ctx.Done():
		p.untrack(id)
		return "", ctx.Err()
	}
}

// Close stops the workers after they drain queued jobs. Safe to call more
// than once.
func (p *RenderPool) Close() error {
	p.state.Lock()
	if p.closed {
		p.state.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.state.Unlock()

	p.workers.Wait()
	close(p.replies)
	<-p.dispatched

	p.logger.Debug("render pool stopped", "workers", p.size)
	return nil
}

// Size returns the number of workers.
func (p *RenderPool) Size() int {
	return p.size
}

// NewRenderer picks the transport once: a pool when the resolved worker
// count exceeds one, the local path otherwise.
func NewRenderer(conv *Converter, workers int) Renderer {
	n := ResolvePoolSize(workers)
	if n <= 1 {
		return NewLocalRenderer(conv)
	}
	return NewRenderPool(conv, n)
}

// ResolvePoolSize determines the worker count.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is container-aware once automaxprocs has run.
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}

// Package event is an in-process event bus. Services fire events after a
// successful write; listeners react (for example by pushing to websocket
// clients).
package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/metrics"
	"github.com/shashiranjanraj/backoffice/pkg/workerpool"
)

// Handler receives an event payload.
type Handler func(ctx context.Context, payload interface{})

// Bus dispatches named events to registered handlers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	wg       sync.WaitGroup
	pool     *workerpool.Pool
}

type Option func(*Bus)

// WithPool makes FireAsync run handlers on pool instead of one goroutine
// per handler. The caller shuts the pool down after Wait.
func WithPool(pool *workerpool.Pool) Option {
	return func(b *Bus) { b.pool = pool }
}

func NewBus(opts ...Option) *Bus {
	b := &Bus{handlers: make(map[string][]Handler)}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Listen registers a handler for the given event name.
func (b *Bus) Listen(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

func (b *Bus) snapshot(name string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Handler(nil), b.handlers[name]...)
}

// Fire runs every handler for name synchronously. A panicking handler is
// logged and does not stop the others.
func (b *Bus) Fire(ctx context.Context, name string, payload interface{}) {
	if b == nil {
		return
	}
	metrics.DomainEvents.WithLabelValues(name).Inc()
	for _, h := range b.snapshot(name) {
		b.call(ctx, name, h, payload)
	}
}

// FireAsync hands the handlers to the pool, or to fresh goroutines without
// one. The request context is detached so handlers outlive the request.
// It blocks only while a configured pool is saturated.
func (b *Bus) FireAsync(ctx context.Context, name string, payload interface{}) {
	if b == nil {
		return
	}
	metrics.DomainEvents.WithLabelValues(name).Inc()
	detached := context.WithoutCancel(ctx)
	for _, h := range b.snapshot(name) {
		h := h
		b.wg.Add(1)
		task := func() {
			defer b.wg.Done()
			b.call(detached, name, h, payload)
		}
		if b.pool == nil {
			go task()
			continue
		}
		if err := b.pool.SubmitWait(detached, task); err != nil {
			b.wg.Done()
			logger.WithCtx(ctx).Warn("event dropped", "event", name, "error", err.Error())
		}
	}
}

// Wait blocks until every FireAsync handler has returned.
func (b *Bus) Wait() { b.wg.Wait() }

func (b *Bus) call(ctx context.Context, name string, h Handler, payload interface{}) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.WithCtx(ctx).Error("event handler panicked",
				"event", name, "error", fmt.Sprintf("%v", rec))
		}
	}()
	h(ctx, payload)
}

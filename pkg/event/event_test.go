package event

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/backoffice/pkg/workerpool"
)

func TestFireRunsHandlersInOrder(t *testing.T) {
	b := NewBus()
	var got []string
	b.Listen("order.created", func(_ context.Context, p interface{}) { got = append(got, "a:"+p.(string)) })
	b.Listen("order.created", func(_ context.Context, p interface{}) { got = append(got, "b:"+p.(string)) })
	b.Listen("order.removed", func(_ context.Context, _ interface{}) { got = append(got, "never") })

	b.Fire(context.Background(), "order.created", "1")

	assert.Equal(t, []string{"a:1", "b:1"}, got)
}

func TestFireSurvivesPanics(t *testing.T) {
	b := NewBus()
	called := false
	b.Listen("x", func(context.Context, interface{}) { panic("boom") })
	b.Listen("x", func(context.Context, interface{}) { called = true })

	assert.NotPanics(t, func() { b.Fire(context.Background(), "x", nil) })
	assert.True(t, called)
}

func TestFireAsyncOutlivesCancelledContext(t *testing.T) {
	b := NewBus()
	var n atomic.Int32
	b.Listen("x", func(ctx context.Context, _ interface{}) {
		if ctx.Err() == nil {
			n.Add(1)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b.FireAsync(ctx, "x", nil)
	b.Wait()

	assert.Equal(t, int32(1), n.Load())
}

func TestNilBusIsNoop(t *testing.T) {
	var b *Bus
	assert.NotPanics(t, func() { b.Fire(context.Background(), "x", nil) })
}

func TestFireAsyncOnPool(t *testing.T) {
	pool := workerpool.New(2)
	b := NewBus(WithPool(pool))
	var n atomic.Int32
	b.Listen("order.created", func(context.Context, interface{}) { n.Add(1) })
	b.Listen("order.created", func(context.Context, interface{}) { n.Add(10) })

	for i := 0; i < 5; i++ {
		b.FireAsync(context.Background(), "order.created", nil)
	}
	b.Wait()
	assert.Equal(t, int32(55), n.Load())

	pool.Shutdown()
	b.FireAsync(context.Background(), "order.created", nil)
	b.Wait()
	assert.Equal(t, int32(55), n.Load())
}

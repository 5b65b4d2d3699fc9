package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deal struct {
	Name string `json:"name"`
}

func TestMemorySetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", []deal{{Name: "mug"}}, 0))

	var got []deal
	require.NoError(t, m.Get(ctx, "k", &got))
	assert.Equal(t, []deal{{Name: "mug"}}, got)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Now()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", 1, time.Minute))
	now = now.Add(2 * time.Minute)

	var n int
	assert.ErrorIs(t, m.Get(ctx, "k", &n), ErrMiss)
}

func TestMemoryDel(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "a", 1, 0))
	require.NoError(t, m.Del(ctx, "a", "missing"))

	var n int
	assert.ErrorIs(t, m.Get(ctx, "a", &n), ErrMiss)
}

func TestRememberLoadsOnce(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	calls := 0
	load := func() ([]deal, error) {
		calls++
		return []deal{{Name: "mug"}}, nil
	}

	first, err := Remember(ctx, m, "deals", time.Minute, load)
	require.NoError(t, err)
	second, err := Remember(ctx, m, "deals", time.Minute, load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)

	Forget(ctx, m, "deals")
	_, err = Remember(ctx, m, "deals", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRememberDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	boom := errors.New("boom")

	_, err := Remember(ctx, m, "k", time.Minute, func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	var n int
	assert.ErrorIs(t, m.Get(ctx, "k", &n), ErrMiss)
}

package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReturnsValue(t *testing.T) {
	p := New(2)
	f := Submit(p, func() (int, error) { return 42, nil })
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := f.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestSubmitPropagatesErrorWithoutKillingPool(t *testing.T) {
	p := New(2)
	f := Submit(p, func() (int, error) { return 0, errors.New("boom") })
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := f.Get(ctx)
	assert.Error(t, err)

	f2 := Submit(p, func() (int, error) { return 7, nil })
	v, err := f2.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestSubmitRecoversPanics(t *testing.T) {
	p := New(2)
	f := Submit(p, func() (int, error) {
		panic("kaboom")
	})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := f.Get(ctx)
	assert.Error(t, err)
}

func TestProcessBatchWaitsForAll(t *testing.T) {
	p := New(4)
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out := ProcessBatch(ctx, p, items, func(i int) (int, error) { return i * 2, nil })
	for i, v := range out {
		assert.Equal(t, i*2, v)
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	p := New(3)
	var cur, max int32
	items := make([]int, 20)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ProcessBatch(ctx, p, items, func(int) (struct{}, error) {
		n := atomic.AddInt32(&cur, 1)
		for {
			m := atomic.LoadInt32(&max)
			if n <= m || atomic.CompareAndSwapInt32(&max, m, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&cur, -1)
		return struct{}{}, nil
	})
	assert.LessOrEqual(t, max, int32(3))
	assert.GreaterOrEqual(t, max, int32(2))
}

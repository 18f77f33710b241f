package streamqueue

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduceAfterStopFailsClosed(t *testing.T) {
	q := New(10, nil, nil)
	require.NoError(t, q.Start(func(string) error { return nil }))
	q.Stop()
	err := q.Produce("x")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestStartTwiceFailsAlreadyRunning(t *testing.T) {
	q := New(10, nil, nil)
	require.NoError(t, q.Start(func(string) error { return nil }))
	defer q.Stop()
	err := q.Start(func(string) error { return nil })
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestConsumerFailuresAreSwallowed(t *testing.T) {
	q := New(10, nil, nil)
	var processed int32
	require.NoError(t, q.Start(func(raw string) error {
		atomic.AddInt32(&processed, 1)
		if raw == "bad" {
			return assert.AnError
		}
		return nil
	}))
	defer q.Stop()

	require.NoError(t, q.Produce("bad"))
	require.NoError(t, q.Produce("good"))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), atomic.LoadInt32(&processed))
}

func TestAllProducedAreConsumedAfterStop(t *testing.T) {
	q := New(4, nil, nil)
	var mu sync.Mutex
	var seen []string
	require.NoError(t, q.Start(func(raw string) error {
		mu.Lock()
		seen = append(seen, raw)
		mu.Unlock()
		return nil
	}))

	for i := 0; i < 20; i++ {
		require.NoError(t, q.Produce("item"))
	}
	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 20)
}

func TestRawDataReceivedFiresSynchronouslyInProduce(t *testing.T) {
	var received []string
	q := New(4, func(raw string) { received = append(received, raw) }, nil)
	require.NoError(t, q.Start(func(string) error { return nil }))
	defer q.Stop()

	require.NoError(t, q.Produce("hello"))
	assert.Equal(t, []string{"hello"}, received)
}

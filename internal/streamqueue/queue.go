// Package streamqueue implements the bounded producer-consumer channel
// with a single consumer task described in spec §4.8.
package streamqueue

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// DefaultCapacity is the default bounded channel capacity.
const DefaultCapacity = 100

// StopDrainTimeout is how long Stop waits for the consumer to exit.
const StopDrainTimeout = 5 * time.Second

var (
	// ErrClosed is returned by Produce after Stop has been called.
	ErrClosed = errors.New("streamqueue: closed")
	// ErrAlreadyRunning is returned by Start if a consumer is already
	// running.
	ErrAlreadyRunning = errors.New("streamqueue: already running")
)

// Queue is a bounded channel fed by any number of producers and drained
// by exactly one consumer goroutine.
type Queue struct {
	ch         chan string
	stopSignal chan struct{}
	onReceived func(raw string)
	lg         *slog.Logger

	mu           sync.Mutex
	closed       bool
	running      bool
	consumerDone chan struct{}
}

// New returns a Queue with the given capacity (DefaultCapacity if <= 0).
// onReceived, if non-nil, fires synchronously inside Produce, before it
// returns, for every accepted item (spec §4.8 RawDataReceived).
func New(capacity int, onReceived func(raw string), lg *slog.Logger) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if lg == nil {
		lg = slog.Default()
	}
	return &Queue{
		ch:         make(chan string, capacity),
		stopSignal: make(chan struct{}),
		onReceived: onReceived,
		lg:         lg,
	}
}

// Produce enqueues raw, suspending the caller while the channel is full.
// It fails with ErrClosed once Stop has been called (including while the
// caller was suspended waiting for space).
func (q *Queue) Produce(raw string) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.mu.Unlock()

	select {
	case q.ch <- raw:
	case <-q.stopSignal:
		return ErrClosed
	}

	if q.onReceived != nil {
		q.onReceived(raw)
	}
	return nil
}

// Start spawns the single consumer goroutine, which drains the channel in
// FIFO order and calls process for each item. A process failure is
// logged and swallowed; it never stops the consumer. Start fails with
// ErrAlreadyRunning if a consumer is already active.
func (q *Queue) Start(process func(raw string) error) error {
	q.mu.Lock()
	if q.running {
		q.mu.Unlock()
		return ErrAlreadyRunning
	}
	q.running = true
	q.consumerDone = make(chan struct{})
	done := q.consumerDone
	q.mu.Unlock()

	go q.consume(process, done)
	return nil
}

func (q *Queue) consume(process func(string) error, done chan struct{}) {
	defer close(done)
	run := func(raw string) {
		if err := process(raw); err != nil {
			q.lg.Error("stream consumer failed", "err", err, "raw", raw)
		}
	}
	for {
		select {
		case raw := <-q.ch:
			run(raw)
		case <-q.stopSignal:
			for {
				select {
				case raw := <-q.ch:
					run(raw)
				default:
					return
				}
			}
		}
	}
}

// Stop marks the queue complete (further Produce calls fail with
// ErrClosed) and waits up to StopDrainTimeout for the consumer to exit,
// returning regardless of whether it has.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.stopSignal)
	done := q.consumerDone
	q.mu.Unlock()

	if done == nil {
		return
	}
	select {
	case <-done:
	case <-time.After(StopDrainTimeout):
	}
}

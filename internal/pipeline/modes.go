package pipeline

import (
	"bufio"
	"context"
	"io"

	"nrgchamp/sensormon/internal/streamqueue"
	"nrgchamp/sensormon/internal/workerpool"
)

// RunSequential reads one line at a time from r and calls ProcessRecord
// on the caller's own goroutine, in order, per spec §4.1 sequential mode.
func (c *Coordinator) RunSequential(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		c.ProcessRecord(sc.Text())
	}
	return sc.Err()
}

// RunPool reads every line from r up front, then feeds them through pool
// with ProcessBatch so at most pool's parallelism are processed
// concurrently at any moment, per spec §4.7.
func (c *Coordinator) RunPool(r io.Reader, pool *workerpool.Pool) error {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return err
	}
	workerpool.ProcessBatch(context.Background(), pool, lines, func(raw string) (struct{}, error) {
		c.ProcessRecord(raw)
		return struct{}{}, nil
	})
	return nil
}

// StreamDriver wires a streamqueue.Queue to the coordinator: every
// produced line is consumed by exactly one goroutine calling
// ProcessRecord, per spec §4.8.
type StreamDriver struct {
	Queue *streamqueue.Queue
}

// NewStreamDriver builds a Queue of the given capacity whose single
// consumer calls c.ProcessRecord.
func NewStreamDriver(c *Coordinator, capacity int) *StreamDriver {
	d := &StreamDriver{}
	d.Queue = streamqueue.New(capacity, nil, c.lg)
	return d
}

// Start begins consuming produced lines through coordinator c.
func (d *StreamDriver) Start(c *Coordinator) error {
	return d.Queue.Start(func(raw string) error {
		c.ProcessRecord(raw)
		return nil
	})
}

// Produce feeds one raw line into the stream.
func (d *StreamDriver) Produce(raw string) error {
	return d.Queue.Produce(raw)
}

// Stop closes the stream and waits for the consumer to drain.
func (d *StreamDriver) Stop() {
	d.Queue.Stop()
}

package handoff

import (
	"context"
	"sync"

	"github.com/kbukum/streamkit/stream"
)

// entry is one slot in a Channel's buffer: a value, a failure, or the
// end-of-stream marker. A tagged struct rather than a magic sentinel
// value, so any T (including zero values and nils) can flow through.
type entry[T any] struct {
	val T
	err error
	end bool
}

// Channel is a thread-safe, unbounded FIFO hand-off between producer
// goroutines and a single consumer goroutine.
//
// Put and Fail are safe under concurrent producers and never block.
// Get must only be called from one consumer goroutine. A Channel
// carries at most one end-of-stream marker, always as its last entry;
// Put, Fail, and End after End are rejected.
type Channel[T any] struct {
	mu      sync.Mutex
	entries []entry[T]
	ended   bool
	signal  chan struct{}
}

// NewChannel creates an empty hand-off channel.
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{
		signal: make(chan struct{}, 1),
	}
}

// Put appends a value to the channel. It never blocks.
// Returns false if the channel has already ended.
func (c *Channel[T]) Put(val T) bool {
	return c.push(entry[T]{val: val})
}

// Fail appends a failure entry to the channel. The consumer side
// receives err from Get in FIFO position; the channel stays usable
// afterwards. Returns false if the channel has already ended.
func (c *Channel[T]) Fail(err error) bool {
	if err == nil {
		return false
	}
	return c.push(entry[T]{err: err})
}

// End appends the end-of-stream marker. Only the first call has any
// effect; it returns false if the channel has already ended.
func (c *Channel[T]) End() bool {
	c.mu.Lock()
	if c.ended {
		c.mu.Unlock()
		return false
	}
	c.ended = true
	c.entries = append(c.entries, entry[T]{end: true})
	c.mu.Unlock()
	c.wake()
	return true
}

func (c *Channel[T]) push(e entry[T]) bool {
	c.mu.Lock()
	if c.ended {
		c.mu.Unlock()
		return false
	}
	c.entries = append(c.entries, e)
	c.mu.Unlock()
	c.wake()
	return true
}

// wake pulses the consumer. The signal channel has capacity one; a
// coalesced pulse is enough because Get re-checks the buffer in a loop.
func (c *Channel[T]) wake() {
	select {
	case c.signal <- struct{}{}:
	default:
	}
}

// Get blocks until an entry is available, then returns it in FIFO
// order: (val, true, nil) for a value, (zero, false, nil) once the
// end-of-stream marker is reached, or (zero, false, err) for a failure
// entry or a done context. After end-of-stream, Get keeps returning
// (zero, false, nil) without blocking.
func (c *Channel[T]) Get(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		c.mu.Lock()
		if len(c.entries) > 0 {
			e := c.entries[0]
			if e.end {
				// Leave the marker in place so exhaustion is idempotent.
				c.mu.Unlock()
				return zero, false, nil
			}
			c.entries = c.entries[1:]
			c.mu.Unlock()
			if e.err != nil {
				return zero, false, e.err
			}
			return e.val, true, nil
		}
		c.mu.Unlock()

		select {
		case <-c.signal:
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	}
}

// Len reports the number of undelivered entries, including any pending
// failure or end-of-stream marker. Diagnostic only: with an unbounded
// buffer this is how far a slow consumer has fallen behind.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stream adapts the channel into a lazy stream. Each pull blocks in Get
// until a value, failure, or end-of-stream arrives. Exactly one live
// consumer per channel: do not combine Stream with direct Get calls or
// consume from multiple goroutines.
func (c *Channel[T]) Stream() *stream.Stream[T] {
	return stream.FromFunc(func(_ context.Context) stream.Iterator[T] {
		return &channelIter[T]{ch: c}
	})
}

type channelIter[T any] struct {
	ch   *Channel[T]
	done bool
}

func (it *channelIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	val, ok, err := it.ch.Get(ctx)
	if err != nil {
		// Failure entries are not terminal; the caller may pull again
		// and will still observe end-of-stream when it arrives.
		return zero, false, err
	}
	if !ok {
		it.done = true
		return zero, false, nil
	}
	return val, true, nil
}

func (it *channelIter[T]) Close() error { return nil }

package handoff

import (
	"context"

	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/stream"
)

// Consumer owns a Channel and a goroutine running target over the
// channel's stream: the worker-with-inbox shape. Producers feed it
// through Send (or via Broadcast, since Consumer is a Sink); the target
// function sees an ordinary lazy stream and never touches the channel.
type Consumer[T any] struct {
	ch     *Channel[T]
	target func(ctx context.Context, values *stream.Stream[T]) error
	opts   options
	done   chan struct{}
	err    error
}

// NewConsumer creates a consumer around target. Start must be called
// before the consumer processes anything; values sent before Start are
// buffered in the channel.
func NewConsumer[T any](target func(ctx context.Context, values *stream.Stream[T]) error, opts ...Option) *Consumer[T] {
	return &Consumer[T]{
		ch:     NewChannel[T](),
		target: target,
		opts:   newOptions(opts),
		done:   make(chan struct{}),
	}
}

// Start launches the consumer goroutine.
func (c *Consumer[T]) Start(ctx context.Context) {
	go func() {
		defer close(c.done)
		c.err = c.target(ctx, c.ch.Stream())
		if c.err != nil {
			c.opts.log.Warn("consumer target failed", logger.Fields(
				logger.FieldComponent, c.opts.name,
				logger.FieldError, c.err.Error(),
			))
		}
	}()
}

// Send enqueues a value for the consumer. It never blocks.
// Returns false once End has been called.
func (c *Consumer[T]) Send(val T) bool { return c.ch.Put(val) }

// Put is Send under the Sink interface.
func (c *Consumer[T]) Put(val T) bool { return c.ch.Put(val) }

// Fail forwards a producer-side failure to the consumer's stream.
func (c *Consumer[T]) Fail(err error) bool { return c.ch.Fail(err) }

// End signals end-of-stream; the target's stream ends once the backlog
// is drained.
func (c *Consumer[T]) End() bool { return c.ch.End() }

// Wait blocks until the target function returns and reports its error.
func (c *Consumer[T]) Wait() error {
	<-c.done
	return c.err
}

// Channel exposes the consumer's inbox for direct pump wiring.
func (c *Consumer[T]) Channel() *Channel[T] { return c.ch }

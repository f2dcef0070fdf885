package handoff

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/stream"
)

// Pump drains one upstream iterator into one Channel on its own
// goroutine, preserving upstream order. When the upstream is exhausted
// or fails, the pump delivers end-of-stream exactly once and
// terminates. A pump is single-shot: started once, never restarted.
type Pump[T any] struct {
	id       string
	upstream stream.Iterator[T]
	ch       *Channel[T]
	opts     options
	done     chan struct{}
	started  bool
}

// NewPump binds an upstream iterator to a target channel.
// The pump takes ownership of the iterator and closes it on termination.
func NewPump[T any](upstream stream.Iterator[T], ch *Channel[T], opts ...Option) *Pump[T] {
	return &Pump[T]{
		id:       uuid.NewString(),
		upstream: upstream,
		ch:       ch,
		opts:     newOptions(opts),
		done:     make(chan struct{}),
	}
}

// ID returns the pump's unique identifier, used in log fields.
func (p *Pump[T]) ID() string { return p.id }

// Start launches the pump goroutine. Calling Start more than once is a
// no-op. The context bounds the upstream's blocking pulls; cancelling
// it ends the source's contribution the same way an upstream failure
// does.
func (p *Pump[T]) Start(ctx context.Context) {
	if p.started {
		return
	}
	p.started = true

	if p.opts.metrics != nil {
		p.opts.metrics.RecordSourceStart(ctx)
	}

	go p.run(ctx)
}

func (p *Pump[T]) run(ctx context.Context) {
	defer close(p.done)
	// End must go out no matter how the loop exits, or the consumer
	// side blocks forever.
	defer p.ch.End()
	defer p.upstream.Close()

	if p.opts.metrics != nil {
		defer p.opts.metrics.RecordSourceEnd(ctx)
	}

	items := 0
	for {
		val, ok, err := p.upstream.Next(ctx)
		if err != nil {
			p.ch.Fail(err)
			p.opts.log.Warn("pump upstream failed", logger.Fields(
				logger.FieldPumpID, p.id,
				logger.FieldStream, p.opts.name,
				logger.FieldItems, items,
				logger.FieldError, err.Error(),
			))
			if p.opts.metrics != nil {
				p.opts.metrics.RecordError(ctx, "upstream", p.opts.name)
			}
			return
		}
		if !ok {
			p.opts.log.Debug("pump upstream exhausted", logger.Fields(
				logger.FieldPumpID, p.id,
				logger.FieldStream, p.opts.name,
				logger.FieldItems, items,
			))
			return
		}
		p.ch.Put(val)
		items++
		if p.opts.metrics != nil {
			p.opts.metrics.RecordItem(ctx, p.opts.name, p.id)
		}
	}
}

// Wait blocks until the pump goroutine has terminated and end-of-stream
// has been delivered to the channel.
func (p *Pump[T]) Wait() {
	<-p.done
}

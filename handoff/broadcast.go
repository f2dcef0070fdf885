package handoff

import (
	"context"

	"github.com/kbukum/streamkit/stream"
)

// Sink is the producer-side face of a hand-off target. Channel and
// Consumer both satisfy it.
type Sink[T any] interface {
	Put(val T) bool
	Fail(err error) bool
	End() bool
}

// Broadcast copies every value of src to all sinks in lock-step: each
// value is delivered to every sink, in sink order, before the next
// value is pulled. All sinks therefore observe identical order and
// advance at the same pace, though an unbounded sink buffer still grows
// without bound behind a slow consumer.
//
// Broadcast runs on the caller's goroutine and returns when src is
// exhausted or fails. End-of-stream is delivered to every sink on all
// paths; a source failure is forwarded to every sink before that and
// returned to the caller.
func Broadcast[T any](ctx context.Context, src *stream.Stream[T], sinks ...Sink[T]) error {
	iter := src.Iter(ctx)
	defer iter.Close()
	defer func() {
		for _, sink := range sinks {
			sink.End()
		}
	}()

	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			for _, sink := range sinks {
				sink.Fail(err)
			}
			return err
		}
		if !ok {
			return nil
		}
		for _, sink := range sinks {
			sink.Put(val)
		}
	}
}

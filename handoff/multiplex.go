package handoff

import (
	"context"
	"fmt"

	"github.com/kbukum/streamkit/stream"
)

// Multiplex fans the given sources into one merged stream.
//
// When the merged stream is first pulled, each source gets its own
// Channel and Pump goroutine, so independently-paced sources (tailed
// files, generators) fill their buffers in parallel. The merged order
// is round-robin concatenation: one value from source 0, then source 1,
// ..., then back to source 0, in input order, skipping sources that
// have ended. The merge ends once every source has ended.
//
// Round-robin blocks on whichever slot's turn it is, even if another
// slot already has data buffered. Within a source, values keep the
// source's order; across sources, only the cycle order is guaranteed.
//
// Multiplex with no sources yields an immediately-empty stream.
func Multiplex[T any](sources []*stream.Stream[T], opts ...Option) *stream.Stream[T] {
	return stream.FromFunc(func(ctx context.Context) stream.Iterator[T] {
		o := newOptions(opts)
		slots := make([]stream.Iterator[T], len(sources))
		for i, src := range sources {
			ch := NewChannel[T]()
			pumpOpts := append([]Option{}, opts...)
			pumpOpts = append(pumpOpts, WithName(slotName(o.name, i)))
			pump := NewPump(src.Iter(ctx), ch, pumpOpts...)
			pump.Start(ctx)
			slots[i] = ch.Stream().Iter(ctx)
		}
		return &roundRobinIter[T]{
			slots:     slots,
			active:    len(slots),
			exhausted: make([]bool, len(slots)),
		}
	})
}

func slotName(name string, i int) string {
	if name == "" {
		return fmt.Sprintf("source-%d", i)
	}
	return fmt.Sprintf("%s/source-%d", name, i)
}

// roundRobinIter serves the merged sequence. Slot state machine:
// active until its adapter reports exhaustion, then exhausted forever.
type roundRobinIter[T any] struct {
	slots     []stream.Iterator[T]
	exhausted []bool
	active    int
	idx       int
}

func (it *roundRobinIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for it.active > 0 {
		if it.exhausted[it.idx] {
			it.idx = (it.idx + 1) % len(it.slots)
			continue
		}
		val, ok, err := it.slots[it.idx].Next(ctx)
		if err != nil {
			// Stay on this slot: a failure entry is not end-of-stream,
			// and the slot's own end marker still follows.
			return zero, false, err
		}
		if !ok {
			it.exhausted[it.idx] = true
			it.active--
			it.idx = (it.idx + 1) % len(it.slots)
			continue
		}
		it.idx = (it.idx + 1) % len(it.slots)
		return val, true, nil
	}
	return zero, false, nil
}

func (it *roundRobinIter[T]) Close() error {
	var firstErr error
	for _, slot := range it.slots {
		if err := slot.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

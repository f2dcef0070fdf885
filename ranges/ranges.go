// Package ranges compresses sorted integer streams into contiguous
// runs and human-readable range strings, lazily.
package ranges

import (
	"context"
	"fmt"

	"github.com/kbukum/streamkit/stream"
)

// Contiguous groups a non-decreasing stream of integers into runs of
// consecutive values. Each yielded slice is freshly allocated.
func Contiguous(s *stream.Stream[int]) *stream.Stream[[]int] {
	return stream.FromFunc(func(ctx context.Context) stream.Iterator[[]int] {
		return &contiguousIter{source: s.Iter(ctx)}
	})
}

// ToRanges renders a non-decreasing stream of integers as range
// strings: "1-3" for a run, "5" for a singleton.
func ToRanges(s *stream.Stream[int]) *stream.Stream[string] {
	return stream.Map(Contiguous(s), func(_ context.Context, run []int) (string, error) {
		if len(run) == 1 {
			return fmt.Sprintf("%d", run[0]), nil
		}
		return fmt.Sprintf("%d-%d", run[0], run[len(run)-1]), nil
	})
}

type contiguousIter struct {
	source stream.Iterator[int]
	buf    []int
	primed bool
	done   bool
}

func (it *contiguousIter) Next(ctx context.Context) ([]int, bool, error) {
	if it.done {
		return nil, false, nil
	}
	for {
		v, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			if !it.primed {
				return nil, false, nil
			}
			run := it.buf
			it.buf = nil
			return run, true, nil
		}
		if !it.primed {
			it.primed = true
			it.buf = []int{v}
			continue
		}
		last := it.buf[len(it.buf)-1]
		if v-last <= 1 {
			it.buf = append(it.buf, v)
			continue
		}
		run := it.buf
		it.buf = []int{v}
		return run, true, nil
	}
}

func (it *contiguousIter) Close() error {
	it.done = true
	return it.source.Close()
}

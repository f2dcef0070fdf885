package stream

import "context"

// Iterator provides pull-based sequential access to a stream of values.
// A single goroutine owns an Iterator; Next is not safe for concurrent use.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	// Exhaustion is idempotent: further calls keep returning (zero, false, nil).
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Stream represents a lazy, single-pass sequence of values.
// No work happens until values are pulled via Collect, Drain, or ForEach.
type Stream[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// --- Constructors ---

// From creates a stream from an existing Iterator.
func From[T any](iter Iterator[T]) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a stream from a slice of values.
func FromSlice[T any](items []T) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a stream from a factory that produces an Iterator.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Stream[T] {
	return &Stream[T]{create: fn}
}

// FromChannel creates a stream that drains a Go channel.
// The stream ends when the channel is closed or the context is done.
func FromChannel[T any](ch <-chan T) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return &goChanIter[T]{ch: ch}
		},
	}
}

// Generate creates an infinite stream by repeatedly calling fn.
// Combine with Take or TakeWhile to bound it.
func Generate[T any](fn func(ctx context.Context) (T, error)) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return &generateIter[T]{fn: fn}
		},
	}
}

// --- Terminals ---

// Collect runs the stream and returns all values as a slice.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	iter := s.create(ctx)
	defer iter.Close()
	var result []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Drain pulls all values and sends each to sink, returning the first error.
func Drain[T any](ctx context.Context, s *Stream[T], sink func(context.Context, T) error) error {
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := sink(ctx, val); err != nil {
			return err
		}
	}
}

// ForEach pulls all values and calls fn for each. Alias of Drain.
func ForEach[T any](ctx context.Context, s *Stream[T], fn func(context.Context, T) error) error {
	return Drain(ctx, s, fn)
}

// Iter returns the raw Iterator for this stream. The caller must Close() it.
func (s *Stream[T]) Iter(ctx context.Context) Iterator[T] {
	return s.create(ctx)
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type goChanIter[T any] struct {
	ch <-chan T
}

func (it *goChanIter[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case val, open := <-it.ch:
		if !open {
			var zero T
			return zero, false, nil
		}
		return val, true, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *goChanIter[T]) Close() error { return nil }

type generateIter[T any] struct {
	fn func(ctx context.Context) (T, error)
}

func (it *generateIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	val, err := it.fn(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *generateIter[T]) Close() error { return nil }

// Package greedy implements lazy greedy selection: repeat each
// candidate from largest to smallest for as long as a stateful
// predicate admits it. Change making and roman numerals fall out as
// thin wrappers.
package greedy

import (
	"context"
	"sort"
	"strings"

	"github.com/kbukum/streamkit/stream"
)

// Predicate decides whether one more copy of a candidate may be taken.
// Implementations are stateful: admitting a value usually updates a
// running total.
type Predicate[T any] func(T) bool

// SumLimit returns a predicate that admits integers while their running
// sum stays at or below limit.
func SumLimit(limit int) Predicate[int] {
	total := 0
	return func(v int) bool {
		if total+v > limit {
			return false
		}
		total += v
		return true
	}
}

// Greedy yields each candidate repeatedly while the predicate admits
// it, then moves to the next. Candidates should arrive in decreasing
// order of preference.
func Greedy[T any](candidates *stream.Stream[T], pred Predicate[T]) *stream.Stream[T] {
	return stream.FromFunc(func(ctx context.Context) stream.Iterator[T] {
		return &greedyIter[T]{source: candidates.Iter(ctx), pred: pred}
	})
}

type greedyIter[T any] struct {
	source  stream.Iterator[T]
	pred    Predicate[T]
	current T
	holding bool
	done    bool
}

func (it *greedyIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	for {
		if it.holding && it.pred(it.current) {
			return it.current, true, nil
		}
		v, ok, err := it.source.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			it.done = true
			return zero, false, nil
		}
		it.current = v
		it.holding = true
	}
}

func (it *greedyIter[T]) Close() error {
	it.done = true
	return it.source.Close()
}

// Change decomposes amount into denominations greedily, largest first.
// The denominations slice is not modified.
func Change(amount int, denominations []int) *stream.Stream[int] {
	sorted := make([]int, len(denominations))
	copy(sorted, denominations)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return Greedy(stream.FromSlice(sorted), SumLimit(amount))
}

var romanValues = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}

var romanGlyphs = map[int]string{
	1000: "M", 900: "CM", 500: "D", 400: "CD",
	100: "C", 90: "XC", 50: "L", 40: "XL",
	10: "X", 9: "IX", 5: "V", 4: "IV", 1: "I",
}

// Roman renders a positive integer as a roman numeral using greedy
// selection over the numeral values.
func Roman(n int) (string, error) {
	parts, err := stream.Collect(context.Background(),
		Greedy(stream.FromSlice(romanValues), SumLimit(n)))
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, v := range parts {
		sb.WriteString(romanGlyphs[v])
	}
	return sb.String(), nil
}

// Package sieve produces prime numbers as a lazy stream using an
// incremental sieve of Eratosthenes: composites are scheduled in a map
// keyed by their next occurrence, so the stream is unbounded.
package sieve

import (
	"context"

	"github.com/kbukum/streamkit/stream"
)

// Primes returns the infinite stream 2, 3, 5, 7, ... Bound it with
// stream.Take or stream.TakeWhile.
func Primes() *stream.Stream[int] {
	return stream.FromFunc(func(_ context.Context) stream.Iterator[int] {
		return &sieveIter{composites: make(map[int][]int), candidate: 2}
	})
}

// PrimesUpTo returns the finite stream of primes no greater than n.
func PrimesUpTo(n int) *stream.Stream[int] {
	return stream.TakeWhile(Primes(), func(p int) bool { return p <= n })
}

type sieveIter struct {
	// composites maps an upcoming composite to the primes that
	// produced it. Each prime advances by its own stride when its
	// composite is reached.
	composites map[int][]int
	candidate  int
	done       bool
}

func (it *sieveIter) Next(_ context.Context) (int, bool, error) {
	if it.done {
		return 0, false, nil
	}
	for {
		n := it.candidate
		it.candidate++
		primes, composite := it.composites[n]
		if !composite {
			it.composites[n*n] = []int{n}
			return n, true, nil
		}
		delete(it.composites, n)
		for _, p := range primes {
			it.composites[n+p] = append(it.composites[n+p], p)
		}
	}
}

func (it *sieveIter) Close() error {
	it.done = true
	it.composites = nil
	return nil
}

// Package stream provides the lazy, pull-based sequence abstraction the
// rest of streamkit is built on.
//
// A Stream is single-pass and lazy — no work happens until values are
// pulled via Collect, Drain, or ForEach. Each stage pulls from the
// previous stage on demand, so a stream over an infinite source (a
// followed log file, a generator) costs nothing until consumed.
//
// The Iterator interface is the wire format between packages: anything
// that can produce values one at a time (a slice, a channel, a tailed
// file, a hand-off channel adapter) plugs in by implementing Next/Close.
//
// # Operators
//
// Synchronous (single-goroutine):
//
//   - Map: transform each value
//   - FlatMap: transform each value into multiple values
//   - Filter: keep values matching a predicate
//   - Take: keep at most n values
//   - TakeWhile: keep values until the predicate fails
//   - Pairwise: sliding window of adjacent pairs
//   - Tap: side-effect without altering the value
//   - Reduce: accumulate all values into one result
//   - Concat: join streams sequentially
//
// Concurrent fan-in and fan-out live in the handoff package; this
// package stays single-goroutine on purpose.
//
// # Usage
//
//	src := stream.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := stream.Map(src, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	evens := stream.Filter(doubled, func(n int) bool { return n%2 == 0 })
//	results, _ := stream.Collect(ctx, evens)
package stream

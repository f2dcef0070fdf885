// Package handoff moves values between goroutines through unbounded
// FIFO channels, and builds fan-in and fan-out pipelines on top of them.
//
// The building blocks, bottom-up:
//
//   - Channel: a thread-safe, unbounded FIFO carrying values, failures,
//     and a single end-of-stream marker. Put never blocks; Get blocks
//     until an entry arrives or the context is done.
//   - Pump: a goroutine that drains one stream.Iterator into a Channel,
//     guaranteeing end-of-stream is delivered exactly once, even when
//     the upstream fails mid-iteration.
//   - Channel.Stream: adapts a Channel back into a lazy stream.Stream,
//     converting the end-of-stream marker into iterator exhaustion.
//   - Multiplex: fans N independently-paced streams into one merged
//     stream by giving each source its own Channel and Pump, then
//     concatenating the adapters round-robin in input order.
//   - Broadcast: copies one stream to N sinks in lock-step, so every
//     sink observes identical order.
//   - Consumer: a goroutine owning a Channel and running a user
//     function over its stream; the classic worker-with-inbox shape.
//
// # Ordering
//
// Within one Channel, FIFO order equals producer order — strict. Across
// channels, Multiplex guarantees only the round-robin cycle order: one
// value per active source per cycle, in input order. Round-robin gives
// bounded unfairness (a fast source cannot starve the merged output) at
// the cost of blocking on whichever slot's turn it is, even when another
// slot already has data ready. If you need ready-set merging instead,
// build it from Channel directly with a select loop; Multiplex will not
// grow that policy.
//
// # Errors
//
// Upstream failures cross the channel boundary: a Pump forwards the
// upstream error as a failure entry before end-of-stream, and the
// channel's stream adapter returns it from Next. Consumers that want the
// fire-and-forget behavior of classic queue demos can ignore the error
// and keep pulling; end-of-stream still arrives.
//
// # Limits
//
// Channels are unbounded: a slow consumer's backlog grows without bound.
// There is no persistence, no replay, and no early cancellation of a
// running Pump other than cancelling the context it was started with.
package handoff

package stream

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
)

// WithTracing wraps a stream with OpenTelemetry span creation.
// Each drain of the stream runs inside a span named "stream.{name}".
func WithTracing[T any](s *Stream[T], name string) *Stream[T] {
	return &Stream[T]{
		create: func(ctx context.Context) Iterator[T] {
			ctx, span := observability.StartSpan(ctx, "stream."+name)
			observability.SetSpanAttribute(ctx, observability.AttrStreamName, name)
			return &tracingIter[T]{source: s.create(ctx), ctx: ctx, span: span}
		},
	}
}

type tracingIter[T any] struct {
	source Iterator[T]
	ctx    context.Context
	span   trace.Span
	items  int64
	ended  bool
}

func (it *tracingIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		observability.SetSpanError(it.ctx, err)
		it.finish()
		return val, false, err
	}
	if !ok {
		it.finish()
		return val, false, nil
	}
	it.items++
	return val, true, nil
}

func (it *tracingIter[T]) finish() {
	if it.ended {
		return
	}
	it.ended = true
	observability.SetSpanAttribute(it.ctx, observability.AttrItemCount, it.items)
	it.span.End()
}

func (it *tracingIter[T]) Close() error {
	it.finish()
	return it.source.Close()
}

// WithMetrics wraps a stream with metric recording.
// Counts items and errors under the given stream name.
func WithMetrics[T any](s *Stream[T], metrics *observability.Metrics, name string) *Stream[T] {
	return &Stream[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &metricsIter[T]{source: s.create(ctx), metrics: metrics, name: name}
		},
	}
}

type metricsIter[T any] struct {
	source  Iterator[T]
	metrics *observability.Metrics
	name    string
}

func (it *metricsIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		it.metrics.RecordError(ctx, "pull", it.name)
		return val, false, err
	}
	if ok {
		it.metrics.RecordItem(ctx, it.name, "")
	}
	return val, ok, nil
}

func (it *metricsIter[T]) Close() error { return it.source.Close() }

// WithLogging wraps a stream with drain logging.
// Logs item count, duration, and success/error status when the stream ends.
func WithLogging[T any](s *Stream[T], log *logger.Logger, name string) *Stream[T] {
	return &Stream[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &loggingIter[T]{source: s.create(ctx), log: log, name: name, start: time.Now()}
		},
	}
}

type loggingIter[T any] struct {
	source Iterator[T]
	log    *logger.Logger
	name   string
	start  time.Time
	items  int64
	done   bool
}

func (it *loggingIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		it.report(err)
		return val, false, err
	}
	if !ok {
		it.report(nil)
		return val, false, nil
	}
	it.items++
	return val, true, nil
}

func (it *loggingIter[T]) report(err error) {
	if it.done {
		return
	}
	it.done = true

	fields := map[string]interface{}{
		"stream":   it.name,
		"items":    it.items,
		"duration": time.Since(it.start).String(),
	}

	if err != nil {
		fields["error"] = err.Error()
		it.log.Error("stream failed", fields)
	} else {
		it.log.Debug("stream drained", fields)
	}
}

func (it *loggingIter[T]) Close() error {
	it.report(nil)
	return it.source.Close()
}

package handoff

import (
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
)

// Option configures pumps spawned by Multiplex, Broadcast consumers,
// and standalone Pumps.
type Option func(*options)

type options struct {
	name    string
	log     *logger.Logger
	metrics *observability.Metrics
}

func newOptions(opts []Option) options {
	o := options{log: logger.Get("handoff")}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName tags log fields and metric attributes with a pipeline name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger used for pump lifecycle and failure events.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics enables item, failure, and active-source metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

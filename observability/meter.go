package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/streamkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for stream pipelines.
type Metrics struct {
	itemTotal     metric.Int64Counter
	errorTotal    metric.Int64Counter
	sourceActive  metric.Int64UpDownCounter
	drainDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	itemTotal, err := meter.Int64Counter("stream.item.total",
		metric.WithDescription("Total number of items pulled through a stream"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.item.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("stream.error.total",
		metric.WithDescription("Total errors by type and stream"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.error.total counter: %w", err)
	}

	sourceActive, err := meter.Int64UpDownCounter("stream.source.active",
		metric.WithDescription("Number of source pumps currently running"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.source.active gauge: %w", err)
	}

	drainDuration, err := meter.Float64Histogram("stream.drain.duration",
		metric.WithDescription("Wall-clock duration of stream drains in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.drain.duration histogram: %w", err)
	}

	return &Metrics{
		itemTotal:     itemTotal,
		errorTotal:    errorTotal,
		sourceActive:  sourceActive,
		drainDuration: drainDuration,
	}, nil
}

// RecordItem counts one item flowing through the named stream from the named source.
func (m *Metrics) RecordItem(ctx context.Context, stream, source string) {
	m.itemTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stream", stream),
		attribute.String("source", source),
	))
}

// RecordError counts an error by type and stream.
func (m *Metrics) RecordError(ctx context.Context, errType, stream string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("stream", stream),
	))
}

// RecordSourceStart increments the active source pump count.
func (m *Metrics) RecordSourceStart(ctx context.Context) {
	m.sourceActive.Add(ctx, 1)
}

// RecordSourceEnd decrements the active source pump count.
func (m *Metrics) RecordSourceEnd(ctx context.Context) {
	m.sourceActive.Add(ctx, -1)
}

// RecordDrain records a completed drain of the named stream.
func (m *Metrics) RecordDrain(ctx context.Context, stream, status string, duration time.Duration) {
	m.drainDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("stream", stream),
		attribute.String("status", status),
	))
}

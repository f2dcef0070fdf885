// Package observability provides OpenTelemetry tracing and metrics
// integration for stream pipelines.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("logmux"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "stream.drain")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("logmux"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("logmux"))
//	metrics.RecordItem(ctx, "access-log", "run/foo")
//
// The stream and handoff packages accept a *Metrics to instrument
// pipelines without taking a hard dependency on an exporter; when no
// meter provider is installed the instruments are no-ops.
package observability

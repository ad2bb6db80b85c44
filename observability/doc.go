// Package observability provides OpenTelemetry tracing and metrics for
// sequence pull chains.
//
// Exporters:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("seqstat"))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("seqstat"))
//	defer mp.Shutdown(ctx)
//
// Chain runs:
//
//	metrics, err := observability.NewMetrics(observability.Meter("seqstat"))
//	ctx, run := observability.StartRun(ctx, "squares", chainID, metrics)
//	run.Element(ctx)
//	run.End(ctx, nil)
package observability

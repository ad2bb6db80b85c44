package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func installRecorder(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return exporter
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")
	assert.Equal(t, "test-service", cfg.ServiceName)
	assert.Equal(t, "localhost:4318", cfg.Endpoint)
	assert.Equal(t, 1.0, cfg.SampleRate)
	assert.True(t, cfg.Insecure)
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")
	assert.Equal(t, "test-service", cfg.ServiceName)
	assert.Equal(t, 15*time.Second, cfg.Interval)
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.5).Description(), sampler(0.5).Description())
}

func TestNewResource(t *testing.T) {
	res, err := newResource("svc", "1.2.3", "test")
	require.NoError(t, err)
	attrs := attrMap(res.Attributes())
	assert.Equal(t, "svc", attrs[AttrServiceName].AsString())
	assert.Equal(t, "1.2.3", attrs[AttrServiceVersion].AsString())
	assert.Equal(t, "test", attrs[AttrEnvironment].AsString())
}

func TestInitTracer(t *testing.T) {
	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	cfg := DefaultTracerConfig("test-service")
	tp, err := InitTracer(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, tp)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = tp.Shutdown(ctx)
}

func TestInitMeter(t *testing.T) {
	prev := otel.GetMeterProvider()
	defer otel.SetMeterProvider(prev)

	cfg := DefaultMeterConfig("test-service")
	cfg.Interval = 0
	mp, err := InitMeter(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, mp)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = mp.Shutdown(ctx)
}

func TestStartSpan(t *testing.T) {
	exporter := installRecorder(t)

	ctx, span := StartSpan(context.Background(), "test-operation")
	assert.Equal(t, span, SpanFromContext(ctx))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "test-operation", spans[0].Name)
}

func TestSetSpanAttribute(t *testing.T) {
	exporter := installRecorder(t)

	ctx, span := StartSpan(context.Background(), "test-attrs")
	SetSpanAttribute(ctx, "string-key", "value")
	SetSpanAttribute(ctx, "int-key", 42)
	SetSpanAttribute(ctx, "int64-key", int64(100))
	SetSpanAttribute(ctx, "float-key", 3.14)
	SetSpanAttribute(ctx, "bool-key", true)
	SetSpanAttribute(ctx, "string-slice-key", []string{"a", "b"})
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
	SetSpanAttributes(ctx, map[string]any{"map-key": "from-map"})
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	attrs := attrMap(spans[0].Attributes)
	assert.Equal(t, "value", attrs["string-key"].AsString())
	assert.Equal(t, int64(42), attrs["int-key"].AsInt64())
	assert.Equal(t, int64(100), attrs["int64-key"].AsInt64())
	assert.Equal(t, 3.14, attrs["float-key"].AsFloat64())
	assert.True(t, attrs["bool-key"].AsBool())
	assert.Equal(t, []string{"a", "b"}, attrs["string-slice-key"].AsStringSlice())
	assert.Equal(t, "from-map", attrs["map-key"].AsString())
	_, ok := attrs["unsupported-key"]
	assert.False(t, ok)
}

func TestSetSpanAttribute_NoSpan(t *testing.T) {
	SetSpanAttribute(context.Background(), "key", "value")
	SetSpanError(context.Background(), fmt.Errorf("no span error"))
}

func TestSetSpanError(t *testing.T) {
	exporter := installRecorder(t)

	ctx, span := StartSpan(context.Background(), "test-error")
	SetSpanError(ctx, fmt.Errorf("test error"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "test error", spans[0].Status.Description)
	require.Len(t, spans[0].Events, 1)
}

func TestNewMetrics(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	require.NotNil(t, metrics)

	ctx := context.Background()
	metrics.RecordElement(ctx, "stage")
	metrics.RecordChainEnd(ctx, "stage", StatusOK, 10*time.Millisecond)
	metrics.RecordError(ctx, "stage")
}

func TestRun_Success(t *testing.T) {
	exporter := installRecorder(t)
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	ctx, run := StartRun(context.Background(), "squares", "chain-1", metrics)
	run.Element(ctx)
	run.Element(ctx)
	assert.False(t, run.Ended())
	run.End(ctx, StatusOK, nil)
	run.End(ctx, StatusError, fmt.Errorf("ignored"))
	assert.True(t, run.Ended())
	assert.Equal(t, 2, run.Elements)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, SpanChain, spans[0].Name)
	attrs := attrMap(spans[0].Attributes)
	assert.Equal(t, "squares", attrs[AttrStage].AsString())
	assert.Equal(t, "chain-1", attrs[AttrChainID].AsString())
	assert.Equal(t, int64(2), attrs[AttrElements].AsInt64())
	assert.Equal(t, StatusOK, attrs[AttrStatus].AsString())
	assert.NotEqual(t, codes.Error, spans[0].Status.Code)
}

func TestRun_Error(t *testing.T) {
	exporter := installRecorder(t)

	ctx, run := StartRun(context.Background(), "parse", "chain-2", nil)
	run.End(ctx, StatusError, fmt.Errorf("bad element"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	attrs := attrMap(spans[0].Attributes)
	assert.Equal(t, "bad element", attrs[AttrErrorMessage].AsString())
	assert.Equal(t, StatusError, attrs[AttrStatus].AsString())
}

func TestRun_Duration(t *testing.T) {
	_, run := StartRun(context.Background(), "s", "c", nil)
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, run.Duration(), 5*time.Millisecond)
}

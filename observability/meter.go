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

	"github.com/kbukum/seqfns/logger"
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

// InitMeter initializes the OpenTelemetry meter provider with an OTLP HTTP
// exporter and installs it globally. The provider must be shut down on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
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

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.GetGlobalLogger().Info("meter initialized", logger.Fields(
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

// Metrics holds the instruments recorded by traced pull chains.
type Metrics struct {
	elementsTotal metric.Int64Counter
	chainsTotal   metric.Int64Counter
	chainDuration metric.Float64Histogram
	errorTotal    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	elementsTotal, err := meter.Int64Counter("chain.elements.total",
		metric.WithDescription("Total number of elements pulled through traced stages"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chain.elements.total counter: %w", err)
	}

	chainsTotal, err := meter.Int64Counter("chain.completed.total",
		metric.WithDescription("Total number of finished pull chain activations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chain.completed.total counter: %w", err)
	}

	chainDuration, err := meter.Float64Histogram("chain.duration",
		metric.WithDescription("Duration of pull chain activations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chain.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("chain.error.total",
		metric.WithDescription("Total errors surfaced through traced stages"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chain.error.total counter: %w", err)
	}

	return &Metrics{
		elementsTotal: elementsTotal,
		chainsTotal:   chainsTotal,
		chainDuration: chainDuration,
		errorTotal:    errorTotal,
	}, nil
}

// RecordElement counts one element passing the named stage.
func (m *Metrics) RecordElement(ctx context.Context, stage string) {
	m.elementsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordChainEnd records a finished pull chain activation.
func (m *Metrics) RecordChainEnd(ctx context.Context, stage, status string, duration time.Duration) {
	m.chainsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("status", status),
	))
	m.chainDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("stage", stage),
	))
}

// RecordError counts an error surfaced through the named stage.
func (m *Metrics) RecordError(ctx context.Context, stage string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}

package main

import (
	"time"

	"github.com/kbukum/seqfns/config"
	"github.com/kbukum/seqfns/observability"
	"github.com/kbukum/seqfns/ranges"
	"github.com/kbukum/seqfns/validation"
)

const (
	modeSync   = "sync"
	modeStream = "stream"
)

// Config is the seqstat configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash" validate:"-"`

	// Mode picks the pull-based (sync) or context-aware (stream) chain.
	Mode      string          `yaml:"mode" mapstructure:"mode" validate:"oneof=sync stream"`
	Range     RangeConfig     `yaml:"range" mapstructure:"range"`
	Pipeline  PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// RangeConfig describes the input range. Either to (with an optional from)
// or count (with an optional start) must be set; increment applies to both.
type RangeConfig struct {
	From      *float64 `yaml:"from" mapstructure:"from"`
	To        *float64 `yaml:"to" mapstructure:"to"`
	Start     *float64 `yaml:"start" mapstructure:"start"`
	Count     *int     `yaml:"count" mapstructure:"count" validate:"omitempty,gte=0"`
	Increment *float64 `yaml:"increment" mapstructure:"increment"`
}

// PipelineConfig lists the stages applied to the range, in order:
// skip, take, distinct, scale.
type PipelineConfig struct {
	Skip     int      `yaml:"skip" mapstructure:"skip" validate:"gte=0"`
	Take     *int     `yaml:"take" mapstructure:"take" validate:"omitempty,gte=0"`
	Distinct bool     `yaml:"distinct" mapstructure:"distinct"`
	Scale    *float64 `yaml:"scale" mapstructure:"scale"`
}

// TelemetryConfig enables OTLP export of traversal spans and metrics.
type TelemetryConfig struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

func defaults() map[string]any {
	return map[string]any{
		"name":                  "seqstat",
		"mode":                  modeSync,
		"telemetry.endpoint":    "localhost:4318",
		"telemetry.insecure":    true,
		"telemetry.sample_rate": 1.0,
		"telemetry.interval":    "15s",
	}
}

// ApplyDefaults fills the service defaults and the mode.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Mode == "" {
		c.Mode = modeSync
	}
}

// Validate checks tags and the range shape together.
func (c *Config) Validate() error {
	r := c.Range
	return validation.New().
		Merge(c.ServiceConfig.Validate()).
		Merge(validation.Validate(c)).
		Check(r.To != nil || r.Count != nil, "range", "needs either to or count").
		Check(r.To == nil || r.Count == nil, "range", "to and count cannot be combined").
		Check(r.From == nil || r.To != nil, "range.from", "requires range.to").
		Check(r.Start == nil || r.Count != nil, "range.start", "requires range.count").
		Err()
}

// Spec converts the range section into a ranges.Spec.
func (r RangeConfig) Spec() ranges.Spec {
	if r.To != nil {
		b := ranges.Bounds{To: *r.To, Increment: r.Increment}
		if r.From != nil {
			b.From = *r.From
		}
		return b
	}
	if r.Start == nil && r.Increment == nil {
		return ranges.Count(*r.Count)
	}
	c := ranges.Counted{Count: *r.Count, Increment: r.Increment}
	if r.Start != nil {
		c.Start = *r.Start
	}
	return c
}

func (c *Config) tracerConfig() observability.TracerConfig {
	tc := observability.DefaultTracerConfig(c.Name)
	tc.ServiceVersion = c.Version
	tc.Environment = c.Environment
	tc.Endpoint = c.Telemetry.Endpoint
	tc.Insecure = c.Telemetry.Insecure
	tc.SampleRate = c.Telemetry.SampleRate
	return tc
}

func (c *Config) meterConfig() observability.MeterConfig {
	mc := observability.DefaultMeterConfig(c.Name)
	mc.ServiceVersion = c.Version
	mc.Environment = c.Environment
	mc.Endpoint = c.Telemetry.Endpoint
	mc.Insecure = c.Telemetry.Insecure
	if c.Telemetry.Interval > 0 {
		mc.Interval = c.Telemetry.Interval
	}
	return mc
}

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/seqfns/config"
	"github.com/kbukum/seqfns/errors"
	"github.com/kbukum/seqfns/logger"
	"github.com/kbukum/seqfns/ranges"
)

func ptr[T any](v T) *T { return &v }

func validConfig() *Config {
	cfg := &Config{Range: RangeConfig{Count: ptr(5)}}
	cfg.Name = "seqstat"
	cfg.ApplyDefaults()
	return cfg
}

func TestConfig_Defaults(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, modeSync, cfg.Mode)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ValidateRangeShape(t *testing.T) {
	tests := []struct {
		name  string
		rng   RangeConfig
		field string
	}{
		{"empty", RangeConfig{}, "range: needs either to or count"},
		{"both", RangeConfig{To: ptr(3.0), Count: ptr(3)}, "range: to and count cannot be combined"},
		{"from without to", RangeConfig{From: ptr(1.0), Count: ptr(3)}, "range.from: requires range.to"},
		{"start without count", RangeConfig{Start: ptr(1.0), To: ptr(3.0)}, "range.start: requires range.count"},
		{"negative count", RangeConfig{Count: ptr(-1)}, "range.count: must be at least 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Range = tc.rng
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestConfig_ValidateTags(t *testing.T) {
	cfg := validConfig()
	cfg.Mode = "batch"
	cfg.Pipeline.Skip = -1
	cfg.Telemetry = TelemetryConfig{Enabled: true, SampleRate: 2}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
	assert.Contains(t, err.Error(), "mode: must be one of: sync stream")
	assert.Contains(t, err.Error(), "pipeline.skip: must be at least 0")
	assert.Contains(t, err.Error(), "telemetry.endpoint: is required")
	assert.Contains(t, err.Error(), "telemetry.sample_rate: must be at most 1")
}

func TestRangeConfig_Spec(t *testing.T) {
	assert.Equal(t, ranges.Count(4), RangeConfig{Count: ptr(4)}.Spec())
	assert.Equal(t,
		ranges.Bounds{From: 1, To: 3, Increment: ptr(0.5)},
		RangeConfig{From: ptr(1.0), To: ptr(3.0), Increment: ptr(0.5)}.Spec(),
	)
	assert.Equal(t, ranges.Bounds{To: 3}, RangeConfig{To: ptr(3.0)}.Spec())
	assert.Equal(t,
		ranges.Counted{Start: 2, Count: 3},
		RangeConfig{Start: ptr(2.0), Count: ptr(3)}.Spec(),
	)
}

func TestSummarize(t *testing.T) {
	for _, mode := range []string{modeSync, modeStream} {
		t.Run(mode, func(t *testing.T) {
			cfg := validConfig()
			cfg.Mode = mode
			cfg.Pipeline = PipelineConfig{Skip: 1, Take: ptr(2), Scale: ptr(2.0)}

			stats, err := summarize(context.Background(), cfg, nil)
			require.NoError(t, err)
			assert.Equal(t, Stats{Count: 2, Sum: 6, Mean: 3, Min: 2, Max: 4}, stats)
		})
	}
}

func TestSummarize_Distinct(t *testing.T) {
	cfg := validConfig()
	cfg.Range = RangeConfig{Start: ptr(2.0), Count: ptr(3), Increment: ptr(0.0)}
	cfg.Pipeline.Distinct = true

	stats, err := summarize(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 2.0, stats.Max)
}

func TestSummarize_Empty(t *testing.T) {
	cfg := validConfig()
	cfg.Pipeline.Take = ptr(0)

	stats, err := summarize(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.True(t, stats.Empty)
	assert.Equal(t, map[string]any{"count": 0, "sum": 0.0, "empty": true}, stats.Fields())
}

func TestSummarize_InfiniteRange(t *testing.T) {
	for _, mode := range []string{modeSync, modeStream} {
		t.Run(mode, func(t *testing.T) {
			cfg := validConfig()
			cfg.Mode = mode
			cfg.Range = RangeConfig{From: ptr(2.0), To: ptr(1.0), Increment: ptr(1.0)}

			_, err := summarize(context.Background(), cfg, nil)
			assert.ErrorIs(t, err, errors.ErrInfiniteSequence)
		})
	}
}

func TestSummarize_StreamCanceled(t *testing.T) {
	cfg := validConfig()
	cfg.Mode = modeStream
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := summarize(ctx, cfg, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: seqstat\nrange:\n  count: 3\nlogging:\n  level: error\n"), 0o600))
	t.Setenv("SEQSTAT_MODE", "stream")
	stale := logger.Nop()
	logger.Register("seq", stale)

	err := run(context.Background(), config.WithConfigFile(path), config.WithEnvFile(filepath.Join(dir, "missing.env")))
	assert.NoError(t, err)

	seqLog := logger.Get("seq")
	assert.NotSame(t, stale, seqLog, "run registers the chain logger")
	assert.Equal(t, "seqstat", seqLog.Name())
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: seqstat\n"), 0o600))

	err := run(context.Background(), config.WithConfigFile(path), config.WithEnvFile(filepath.Join(dir, "missing.env")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs either to or count")
}

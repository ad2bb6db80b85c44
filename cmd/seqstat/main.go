// Command seqstat builds a numeric range, runs it through a configurable
// chain of sequence stages and logs summary statistics.
//
// Configuration comes from config.yml, a .env file and SEQSTAT_* environment
// variables, for example:
//
//	SEQSTAT_RANGE_TO=100 SEQSTAT_PIPELINE_TAKE=10 SEQSTAT_MODE=stream seqstat
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kbukum/seqfns/bootstrap"
	"github.com/kbukum/seqfns/config"
	"github.com/kbukum/seqfns/logger"
	"github.com/kbukum/seqfns/observability"
	"github.com/kbukum/seqfns/version"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts ...config.Option) error {
	var cfg Config
	opts = append([]config.Option{config.WithEnvPrefix("SEQSTAT"), config.WithDefaults(defaults())}, opts...)
	if err := config.Load("seqstat", &cfg, opts...); err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = version.Get().String()
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}
	logger.Register("seq", app.Logger.WithComponent("seq"))
	if cfg.Telemetry.Enabled {
		app.OnStart(func(ctx context.Context) error {
			return startTelemetry(ctx, app)
		})
	}

	return app.RunTask(ctx, func(ctx context.Context) error {
		metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			return err
		}
		stats, err := summarize(ctx, &cfg, metrics)
		if err != nil {
			return err
		}
		app.Logger.Info("summary", stats.Fields())
		return nil
	})
}

// startTelemetry installs the OTLP tracer and meter providers and registers
// their shutdown.
func startTelemetry(ctx context.Context, app *bootstrap.App[*Config]) error {
	tp, err := observability.InitTracer(ctx, app.Cfg.tracerConfig())
	if err != nil {
		return err
	}
	app.OnStop(tp.Shutdown)

	mp, err := observability.InitMeter(ctx, app.Cfg.meterConfig())
	if err != nil {
		return err
	}
	app.OnStop(mp.Shutdown)

	app.Logger.Info("telemetry enabled", map[string]any{"endpoint": app.Cfg.Telemetry.Endpoint})
	return nil
}

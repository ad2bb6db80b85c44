package bootstrap

import (
	"context"
	"fmt"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/kbukum/seqfns/logger"
)

// App wraps a typed config with the lifecycle of a one-shot command.
type App[C Config] struct {
	Name    string
	Version string
	Cfg     C
	Logger  *logger.Logger

	gracefulTimeout time.Duration
	signals         bool

	onStart []Hook
	onStop  []Hook
}

// NewApp applies config defaults, validates the config and initializes the
// logger.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	base := cfg.GetServiceConfig()
	o := resolveOptions(opts)

	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
		signals:         o.signals,
	}
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	if o.logger != nil {
		app.Logger = o.logger
	} else {
		app.Logger = logger.New(&base.Logging, base.Name)
		logger.SetGlobalLogger(app.Logger)
	}
	return app, nil
}

// RunTask runs start hooks, then task, then stop hooks. The task context is
// canceled on SIGINT or SIGTERM. The task error wins over a stop error.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	a.Logger.Info("starting", map[string]any{
		"name":    a.Name,
		"version": a.Version,
	})

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if a.signals {
		var stop context.CancelFunc
		taskCtx, stop = signal.NotifyContext(taskCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
	}

	start := time.Now()
	var taskErr error
	if err := runHooks(taskCtx, a.onStart); err != nil {
		taskErr = fmt.Errorf("start hook: %w", err)
	} else {
		taskErr = task(taskCtx)
	}

	fields := logger.DurationFields("task", time.Since(start))
	if taskErr != nil {
		fields[logger.FieldError] = taskErr.Error()
		a.Logger.Error("task failed", fields)
	} else {
		a.Logger.Info("task finished", fields)
	}

	if stopErr := a.stop(); stopErr != nil && taskErr == nil {
		return stopErr
	}
	return taskErr
}

func (a *App[C]) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	hooks := slices.Clone(a.onStop)
	slices.Reverse(hooks)
	if err := runHooks(ctx, hooks); err != nil {
		a.Logger.Error("stop hook failed", map[string]any{
			logger.FieldError: err.Error(),
		})
		return err
	}
	return nil
}

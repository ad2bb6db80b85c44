// Package bootstrap runs a finite command with a uniform lifecycle: defaults
// and validation for its config, global logger setup, start hooks, the task
// itself under a context that SIGINT and SIGTERM cancel, and stop hooks
// bounded by a graceful timeout.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil { ... }
//	app.OnStop(shutdownTelemetry)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return summarize(ctx, app.Cfg)
//	})
package bootstrap

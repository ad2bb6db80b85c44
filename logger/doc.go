// Package logger provides structured logging for seqfns using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The library itself only
// logs from Trace stages; by default those use a no-op logger.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("pipeline")
//	log.Info("chain completed", logger.Fields("elements", 42))
package logger

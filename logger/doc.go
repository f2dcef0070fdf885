// Package logger provides structured logging for streamkit pipelines
// using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("handoff")
//	log.Info("pump started", logger.Fields("pump_id", id))
package logger

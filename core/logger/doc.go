// Package logger builds the application's zap logger.
//
// The debug level selects zap's development preset (ISO8601 timestamps,
// caller info); any other level selects the production preset. Format
// chooses between json and colored console encoding.
//
// WithRayID tags a logger with the request id stored by the rayid
// middleware, so every log line of one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger

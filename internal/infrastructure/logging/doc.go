// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output to stderr for machine parsing
//   - Development: Colored console output for human readability
//
// Diagnostic logging is kept off stdout so the demo reports stay clean
// plain text; the default level is warn for the same reason.
//
// Example Usage:
//
//	logger := logging.New(logging.Config{Level: "debug", Development: true})
//	logger.Info("pipeline submitted", zap.Int("items", 8))
package logging

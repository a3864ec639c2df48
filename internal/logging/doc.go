// Package logging provides structured logging utilities for the yattmcp
// application.
//
// This package centralizes logging patterns to ensure consistent,
// structured logging throughout the codebase using the standard
// library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Token sanitization for safe credential logging
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "tasks.search")
//	logger.Info("search complete",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("client configured",
//	    slog.String("token", logging.SanitizeToken(token)))
package logging

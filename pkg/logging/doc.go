// Package logging provides structured logging utilities for the recipe gateway.
//
// # Overview
//
// This package wraps the standard library slog package with gateway defaults
// so that the daemon, the CLI and the HTTP middleware all emit the same JSON
// records. It supports environment-based level configuration, module/version
// context injection and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("recipe-gateway", version)
//	    slog.Info("upstream call", "endpoint", "filter.php", "status", 200)
//	}
//
// Overriding the level explicitly (e.g. from a --log-level flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("recipegw", version, "debug")
//
// # Environment Configuration
//
//	LOG_LEVEL=debug recipegwd
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "request completed",
//	    "module": "recipe-gateway",
//	    "version": "v1.0.0",
//	    "status": 200
//	}
package logging

// Package logging provides structured logging utilities for safevul.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
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
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("safevul", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("processor", "v2.0.0", "debug")
//	logger.Info("run starting", "base", "/data/packages")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("safevul", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug safevul process --path ./packages
//	LOG_LEVEL=error safevul compare 1.2.3 1.2.4
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
//	    "msg": "run finished",
//	    "module": "safevul",
//	    "version": "v1.0.0",
//	    "failed": 3
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "processor.(*Processor).evaluate",
//	        "file": "processor.go",
//	        "line": 45
//	    },
//	    "msg": "evaluating folder",
//	    "module": "safevul",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("folder relocated",
//	    "name", "lodash",
//	    "category", "SameVersion",
//	    "destination", "Failed/SameVersion/lodash",
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("dependency selected", "key", key) // Development/troubleshooting
//	slog.Info("run finished")                      // Normal operations
//	slog.Warn("folder skipped")                    // Potential issues
//	slog.Error("move failed")                      // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to swap versions",
//	    "error", err,
//	    "folder", name,
//	    "manifest", path,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/processor - per-folder decisions and relocation logging
//
// The core pkg/version package never logs.
package logging

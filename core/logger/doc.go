// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Run Awareness
//
// Every audit run carries a UUID. The WithRun helper attaches it to the log
// entry so that all logs of one run can be correlated, including rows stored in
// the run history.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Audit started")
//
//	l := logger.WithRun(log, runID)
//	l.Warn("Skipping unreadable dump", zap.Error(err))
package logger

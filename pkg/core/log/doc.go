// Package log provides structured logging for dynstr and its tooling.
//
// A Logger formats Entries as JSON, text or colored console lines and writes
// them to an io.Writer. Derivation methods (WithField, WithName,
// WithCorrelationID, ...) return new loggers and never mutate the receiver:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	reqLog := logger.WithCorrelationID(id).WithField("command", "apply")
//	reqLog.Info("operation applied", log.Fields{"op": "trim", "size": 5})
//
// LogError picks the level from the severity of a coded error, so data format
// problems land at info while allocation failures land at error.
//
// Discard returns a logger at LevelOff; package dynstr uses it until a caller
// installs a real logger with dynstr.SetLogger.
package log

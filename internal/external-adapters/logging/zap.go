// Package logging provides the zap-backed implementation of the domain
// Logger interface. Diagnostics go to stderr so the manifest echo on stdout
// stays machine-readable.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"formulagen/internal/domain/interfaces"
)

// ZapLogger implements interfaces.Logger on top of go.uber.org/zap
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger creates a production logger writing JSON to stderr. Debug
// level is enabled when debug is true.
func NewZapLogger(debug bool) *ZapLogger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return &ZapLogger{logger: zap.Must(config.Build())}
}

// Debug logs debug-level messages
func (z *ZapLogger) Debug(msg string, fields ...interfaces.Field) {
	z.logger.Debug(msg, toZapFields(fields)...)
}

// Info logs informational messages
func (z *ZapLogger) Info(msg string, fields ...interfaces.Field) {
	z.logger.Info(msg, toZapFields(fields)...)
}

// Warn logs warning messages
func (z *ZapLogger) Warn(msg string, fields ...interfaces.Field) {
	z.logger.Warn(msg, toZapFields(fields)...)
}

// Error logs error messages
func (z *ZapLogger) Error(msg string, fields ...interfaces.Field) {
	z.logger.Error(msg, toZapFields(fields)...)
}

// Sync flushes any buffered log entries
func (z *ZapLogger) Sync() {
	//nolint:errcheck // Sync on stderr is best-effort
	_ = z.logger.Sync()
}

func toZapFields(fields []interfaces.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}

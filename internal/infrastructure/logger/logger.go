package logger

import (
	"go.uber.org/zap"

	"github.com/desparches/backend/internal/domain/contract"
)

// ZapLogger adapts a zap sugared logger to the IAppLogger contract.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a production logger. If zap cannot be initialized it
// degrades to a no-op core rather than failing startup.
func NewZapLogger() contract.IAppLogger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return &ZapLogger{sugar: z.Sugar()}
}

// NewNopLogger returns a logger that drops everything. Used in tests.
func NewNopLogger() contract.IAppLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

var _ contract.IAppLogger = (*ZapLogger)(nil)

// Debugf logs a debug message.
func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Infof logs an info message.
func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs a warning message.
func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs an error message.
func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

package errors

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(newDefaultLogger())
}

// newDefaultLogger builds the production logger LogHandler starts with.
// Stack traces are left to LogHandler.Verbose.
func newDefaultLogger(opts ...zap.Option) *zap.Logger {
	opts = append([]zap.Option{zap.AddStacktrace(zapcore.DPanicLevel)}, opts...)
	l, err := zap.NewProduction(opts...)
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("visibility")
}

// SetLogger sets the zap logger used by LogHandler. A nil logger silences it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Logger returns the logger used by LogHandler.
func Logger() *zap.Logger {
	return logger.Load()
}

// LogHandler is an ErrorHandler that writes errors to the package zap logger.
type LogHandler struct {
	// Verbose attaches stack traces to every entry.
	Verbose bool
}

// HandleError logs an Error at error level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Channel != "" {
		fields = append(fields, zap.String("channel", err.Channel))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	Logger().Error("visibility error", fields...)
}

// HandlePanic logs a recovered panic at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.Any("value", err.Value)}
	if err.Op != "" {
		fields = append(fields, zap.String("op", err.Op))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	Logger().Error("visibility panic", fields...)
}

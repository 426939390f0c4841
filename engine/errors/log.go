package errors

import (
	"context"
	"log/slog"
)

// LogHandler is a Handler that writes errors to a slog.Logger.
type LogHandler struct {
	// Logger receives the records; nil means slog.Default().
	Logger *slog.Logger
	// Verbose attaches stack traces to the records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a UIError. Defects are logged at error level, host
// callback failures and usage errors at warn level.
func (h *LogHandler) HandleError(err *UIError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Session != "" {
		attrs = append(attrs, slog.String("session_id", err.Session))
	}
	if err.Err != nil {
		attrs = append(attrs, slog.Any("err", err.Err))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}

	level := slog.LevelWarn
	if err.Kind.Defect() {
		level = slog.LevelError
	}
	h.logger().Log(context.Background(), level, "frameui error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().Error("frameui panic", attrs...)
}

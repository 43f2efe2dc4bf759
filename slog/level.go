// Package slog provides log/slog handlers and logging decorators for ldraw
// services.
package slog

import (
	"io"
	"log/slog"
)

// LevelTrace is below Debug and carries per-part notices such as cache hits.
const LevelTrace = slog.LevelDebug - 4

// LevelForVerbosity maps a verbosity of 0 (errors only) through 5 (trace)
// to the minimum level a handler should emit.
func LevelForVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelError
	case v <= 2:
		return slog.LevelWarn
	case v == 3:
		return slog.LevelInfo
	case v == 4:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// NewHandler returns a text handler writing to w that emits records at or
// above the level for verbosity v. The trace level prints as TRACE.
func NewHandler(w io.Writer, v int) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: LevelForVerbosity(v),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			if level, ok := a.Value.Any().(slog.Level); ok && level == LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	})
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ldraw"
)

// Ensure LoggingResolver implements ldraw.Resolver.
var _ ldraw.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver and reports parts that cannot be found.
type LoggingResolver struct {
	next   ldraw.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next ldraw.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
// Missing files are logged at Warn, other failures at Error.
func (r *LoggingResolver) Resolve(ctx context.Context, name, modelDir string) (path string, err error) {
	defer func(begin time.Time) {
		switch {
		case err == nil:
			r.logger.Log(ctx, LevelTrace, "resolve",
				"name", name,
				"path", path,
				"duration", time.Since(begin),
			)
		case ldraw.ErrorCode(err) == ldraw.ENOTFOUND:
			r.logger.WarnContext(ctx, "file not found",
				"name", name,
				"modelDir", modelDir,
			)
		default:
			r.logger.ErrorContext(ctx, "resolve",
				"name", name,
				"err", err,
			)
		}
	}(time.Now())
	return r.next.Resolve(ctx, name, modelDir)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ldraw"
)

// Ensure LoggingPartCache implements ldraw.PartCache.
var _ ldraw.PartCache = (*LoggingPartCache)(nil)

// LoggingPartCache wraps a PartCache and logs every part parsed into it.
type LoggingPartCache struct {
	next   ldraw.PartCache
	logger *slog.Logger
}

// NewLoggingPartCache creates a new LoggingPartCache.
func NewLoggingPartCache(next ldraw.PartCache, logger *slog.Logger) *LoggingPartCache {
	return &LoggingPartCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache.
func (c *LoggingPartCache) Get(id string) (*ldraw.Document, bool) {
	return c.next.Get(id)
}

// GetOrParse delegates to the wrapped cache and logs at Debug when fn runs.
func (c *LoggingPartCache) GetOrParse(ctx context.Context, id string, fn ldraw.ParseFunc) (*ldraw.Document, error) {
	return c.next.GetOrParse(ctx, id, func(ctx context.Context) (doc *ldraw.Document, err error) {
		defer func(begin time.Time) {
			c.logger.DebugContext(ctx, "caching part",
				"part", id,
				"duration", time.Since(begin),
				"err", err,
			)
		}(time.Now())
		return fn(ctx)
	})
}

// Len delegates to the wrapped cache.
func (c *LoggingPartCache) Len() int {
	return c.next.Len()
}

// Parts delegates to the wrapped cache.
func (c *LoggingPartCache) Parts() map[string]*ldraw.Document {
	return c.next.Parts()
}

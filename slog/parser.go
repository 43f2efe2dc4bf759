package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ldraw"
)

// Ensure LoggingModelParser implements ldraw.ModelParser.
var _ ldraw.ModelParser = (*LoggingModelParser)(nil)

// LoggingModelParser wraps a ModelParser with progress and failure logging.
type LoggingModelParser struct {
	next   ldraw.ModelParser
	logger *slog.Logger
}

// NewLoggingModelParser creates a new LoggingModelParser.
func NewLoggingModelParser(next ldraw.ModelParser, logger *slog.Logger) *LoggingModelParser {
	return &LoggingModelParser{next: next, logger: logger}
}

// ParseModel logs the model being read and the outcome of the parse.
func (p *LoggingModelParser) ParseModel(ctx context.Context, name string) (doc *ldraw.Document, err error) {
	p.logger.InfoContext(ctx, "reading model", "name", name)

	defer func(begin time.Time) {
		switch {
		case err == nil:
			p.logger.InfoContext(ctx, "completed model",
				"name", name,
				"parts", len(doc.Parts),
				"duration", time.Since(begin),
			)
		case ldraw.ErrorCode(err) == ldraw.ENOTFOUND:
			p.logger.ErrorContext(ctx, "model not found", "name", name)
		default:
			p.logger.ErrorContext(ctx, "parse model",
				"name", name,
				"err", err,
			)
		}
	}(time.Now())
	return p.next.ParseModel(ctx, name)
}

// Package slog provides log/slog decorators for cvparse services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cvparse"
)

// Ensure LoggingExtractor implements cvparse.Extractor.
var _ cvparse.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   cvparse.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next cvparse.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs page and node counts.
func (e *LoggingExtractor) Extract(ctx context.Context, name string, data []byte) (doc *cvparse.Document, err error) {
	defer func(begin time.Time) {
		var pages, nodes int
		if doc != nil {
			pages = len(doc.Pages)
			for _, p := range doc.Pages {
				nodes += len(p.Nodes)
			}
		}
		e.logger.Debug("extract",
			"source", name,
			"bytes", len(data),
			"pages", pages,
			"nodes", nodes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, name, data)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cvparse"
)

// Ensure LoggingParser implements cvparse.DocumentParser.
var _ cvparse.DocumentParser = (*LoggingParser)(nil)

// LoggingParser wraps a DocumentParser with logging.
type LoggingParser struct {
	next   cvparse.DocumentParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next cvparse.DocumentParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the entry counts.
func (p *LoggingParser) Parse(ctx context.Context, doc *cvparse.Document) (rec *cvparse.Record, err error) {
	defer func(begin time.Time) {
		var source string
		if doc != nil {
			source = doc.Name
		}
		var experience, education int
		if rec != nil {
			experience, education = len(rec.Experience), len(rec.Education)
		}
		p.logger.Info("parse",
			"source", source,
			"experience", experience,
			"education", education,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(ctx, doc)
}

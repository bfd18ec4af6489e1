package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/reader"
)

// Ensure LoggingExtractor implements reader.Extractor.
var _ reader.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   reader.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next reader.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(html string, url string) (article *reader.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if article != nil {
			attrs = append(attrs,
				"title", article.Title,
				"author", article.Author,
				"date", article.Date,
				"bytes", len(article.Content),
			)
		}
		attrs = append(attrs, "err", err)
		e.logger.Log(context.Background(), levelFor(err), "extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, url)
}

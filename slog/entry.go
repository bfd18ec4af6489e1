package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/reader"
)

// Ensure LoggingEntryService implements reader.EntryService.
var _ reader.EntryService = (*LoggingEntryService)(nil)

// LoggingEntryService wraps an EntryService and logs writes. Reads are
// delegated silently.
type LoggingEntryService struct {
	next   reader.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next reader.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// CreateEntry delegates to the wrapped service and logs the new entry.
func (s *LoggingEntryService) CreateEntry(ctx context.Context, entry *reader.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, levelFor(err), "create entry",
			"id", entry.ID,
			"url", entry.SourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntry(ctx, entry)
}

// FindEntryByID delegates to the wrapped service.
func (s *LoggingEntryService) FindEntryByID(ctx context.Context, id string) (*reader.Entry, error) {
	return s.next.FindEntryByID(ctx, id)
}

// FindEntries delegates to the wrapped service.
func (s *LoggingEntryService) FindEntries(ctx context.Context, filter reader.EntryFilter) ([]*reader.Entry, error) {
	return s.next.FindEntries(ctx, filter)
}

// DeleteEntry delegates to the wrapped service and logs the removal.
func (s *LoggingEntryService) DeleteEntry(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, levelFor(err), "delete entry",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteEntry(ctx, id)
}

package mock

import (
	"context"

	"github.com/fwojciec/reader"
)

var _ reader.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of reader.EntryService.
type EntryService struct {
	CreateEntryFn   func(ctx context.Context, entry *reader.Entry) error
	FindEntryByIDFn func(ctx context.Context, id string) (*reader.Entry, error)
	FindEntriesFn   func(ctx context.Context, filter reader.EntryFilter) ([]*reader.Entry, error)
	DeleteEntryFn   func(ctx context.Context, id string) error
}

func (s *EntryService) CreateEntry(ctx context.Context, entry *reader.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*reader.Entry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *EntryService) FindEntries(ctx context.Context, filter reader.EntryFilter) ([]*reader.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}

package mock

import (
	"context"

	"github.com/fwojciec/reader"
)

var _ reader.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of reader.ArticleStore.
type ArticleStore struct {
	SaveFn   func(ctx context.Context, sourceURL string, article *reader.Article) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ArticleStore) Save(ctx context.Context, sourceURL string, article *reader.Article) error {
	return s.SaveFn(ctx, sourceURL, article)
}

func (s *ArticleStore) Commit() error {
	return s.CommitFn()
}

func (s *ArticleStore) Abort() error {
	return s.AbortFn()
}

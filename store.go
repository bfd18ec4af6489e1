package reader

import "context"

// ArticleStore persists articles with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ArticleStore interface {
	Save(ctx context.Context, sourceURL string, article *Article) error
	Commit() error
	Abort() error
}

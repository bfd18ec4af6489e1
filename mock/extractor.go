package mock

import "github.com/fwojciec/reader"

var _ reader.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of reader.Extractor.
type Extractor struct {
	ExtractFn func(html string, url string) (*reader.Article, error)
}

func (e *Extractor) Extract(html string, url string) (*reader.Article, error) {
	return e.ExtractFn(html, url)
}

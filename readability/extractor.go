// Package readability adapts go-shiori/go-readability to reader.Extractor.
package readability

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/reader"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements reader.Extractor at compile time.
var _ reader.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*reader.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, reader.Errorf(reader.EINVALID, "empty HTML input")
	}

	// A nil URL only disables relative link resolution.
	u, err := url.Parse(pageURL)
	if err != nil || !u.IsAbs() {
		u = nil
	}

	result, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	article := &reader.Article{
		Title:   strings.TrimSpace(result.Title),
		Author:  strings.TrimSpace(result.Byline),
		Content: result.Content,
	}
	if article.Title == "" {
		article.Title = reader.DefaultTitle
	}
	if result.PublishedTime != nil && !result.PublishedTime.IsZero() {
		article.Date = result.PublishedTime.Format(reader.DateLayout)
	}

	return article, nil
}

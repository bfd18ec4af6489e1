// Package goquery implements the heuristic article extractor on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/reader"
)

// Ensure Extractor implements reader.Extractor at compile time.
var _ reader.Extractor = (*Extractor)(nil)

// Extractor pulls title, author, date and body out of an HTML page using
// ordered selector cascades, site overrides and the generic Cleaner.
// It keeps no per-call state and is safe for concurrent use.
type Extractor struct {
	cleaner *Cleaner
	sites   *Registry
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCleaner sets the cleaner used for article bodies.
// Defaults to NewCleaner() if not specified.
func WithCleaner(c *Cleaner) Option {
	return func(e *Extractor) {
		e.cleaner = c
	}
}

// WithRegistry sets the site overrides.
// Defaults to DefaultRegistry() if not specified.
func WithRegistry(r *Registry) Option {
	return func(e *Extractor) {
		e.sites = r
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		cleaner: NewCleaner(),
		sites:   DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and extracts the article. It fails only when the
// input is empty or cannot be parsed.
func (e *Extractor) Extract(rawHTML string, url string) (*reader.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, reader.Errorf(reader.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, reader.Errorf(reader.EINVALID, "failed to parse HTML: %v", err)
	}

	return e.ExtractDocument(doc, url), nil
}

// ExtractDocument extracts the article from an already parsed document.
// Every field falls back to its default independently; doc is not modified.
func (e *Extractor) ExtractDocument(doc *goquery.Document, url string) *reader.Article {
	article := &reader.Article{Title: reader.DefaultTitle}

	if title, ok := TitleRule.First(doc.Selection, nil); ok {
		article.Title = title
	}
	if author, ok := AuthorRule.First(doc.Selection, nil); ok {
		article.Author = author
	}
	if date, ok := DateRule.First(doc.Selection, NormalizeDate); ok {
		article.Date = date
	}

	article.Content = e.content(doc, url)
	return article
}

func (e *Extractor) content(doc *goquery.Document, url string) string {
	if e.sites != nil {
		if site := e.sites.Match(url); site != nil {
			return site.ExtractContent(doc, e.cleaner)
		}
	}

	for _, selector := range ContentContainers {
		if container := doc.Find(selector).First(); container.Length() > 0 {
			return e.cleaner.Clean(container)
		}
	}

	return ""
}

// Package trafilatura adapts markusmobius/go-trafilatura to reader.Extractor.
package trafilatura

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/reader"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements reader.Extractor at compile time.
var _ reader.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the article from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}

	article := &reader.Article{
		Title:  strings.TrimSpace(result.Metadata.Title),
		Author: strings.TrimSpace(result.Metadata.Author),
	}
	if article.Title == "" {
		article.Title = reader.DefaultTitle
	}
	if !result.Metadata.Date.IsZero() {
		article.Date = result.Metadata.Date.Format(reader.DateLayout)
	}
	if result.ContentNode != nil {
		if article.Content, err = renderNode(result.ContentNode); err != nil {
			return nil, fmt.Errorf("render content: %w", err)
		}
	}

	return article, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

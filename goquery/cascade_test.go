package goquery_test

import (
	"testing"

	"github.com/fwojciec/reader/goquery"
	"github.com/stretchr/testify/assert"
)

func TestTitleRule(t *testing.T) {
	t.Parallel()

	t.Run("prefers a titled h1 over the first h1", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page(`<h1>Site Name</h1><h1 class="post-title-main">The Real Headline</h1>`))

		got, ok := goquery.TitleRule.First(doc.Selection, nil)

		assert.True(t, ok)
		assert.Equal(t, "The Real Headline", got)
	})

	t.Run("finds h1 nested in an article-title wrapper", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page(`<div class="article-title"><h1> Wrapped </h1></div>`))

		got, ok := goquery.TitleRule.First(doc.Selection, nil)

		assert.True(t, ok)
		assert.Equal(t, "Wrapped", got)
	})

	t.Run("skips an empty h1 and uses the document title", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>From Head</title></head><body><h1>   </h1></body></html>`)

		got, ok := goquery.TitleRule.First(doc.Selection, nil)

		assert.True(t, ok)
		assert.Equal(t, "From Head", got)
	})

	t.Run("reports no match on a page without headings", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page(`<p>Just text.</p>`))

		got, ok := goquery.TitleRule.First(doc.Selection, nil)

		assert.False(t, ok)
		assert.Empty(t, got)
	})
}

func TestAuthorRule(t *testing.T) {
	t.Parallel()

	t.Run("reads the meta author content", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><meta name="author" content="Jane Doe"></head><body><p>Body</p></body></html>`)

		got, ok := goquery.AuthorRule.First(doc.Selection, nil)

		assert.True(t, ok)
		assert.Equal(t, "Jane Doe", got)
	})

	t.Run("prefers a visible byline over meta", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><meta name="author" content="Meta Person"></head>`+
			`<body><span class="byline">By Visible Person</span></body></html>`)

		got, ok := goquery.AuthorRule.First(doc.Selection, nil)

		assert.True(t, ok)
		assert.Equal(t, "By Visible Person", got)
	})

	t.Run("prefers the author name element over the byline", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page(`<div class="byline">Posted by</div><div class="author-box"><span class="name">Ann Writer</span></div>`))

		got, ok := goquery.AuthorRule.First(doc.Selection, nil)

		assert.True(t, ok)
		assert.Equal(t, "Ann Writer", got)
	})
}

func TestDateRule(t *testing.T) {
	t.Parallel()

	t.Run("reads the datetime attribute before the visible text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page(`<time datetime="2024-03-01">yesterday</time>`))

		got, ok := goquery.DateRule.First(doc.Selection, goquery.NormalizeDate)

		assert.True(t, ok)
		assert.Equal(t, "March 1, 2024", got)
	})

	t.Run("skips an unparseable candidate", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><meta property="article:published_time" content="2024-01-05T10:00:00Z"></head>`+
			`<body><span class="date">sometime</span></body></html>`)

		got, ok := goquery.DateRule.First(doc.Selection, goquery.NormalizeDate)

		assert.True(t, ok)
		assert.Equal(t, "January 5, 2024", got)
	})

	t.Run("reports no match when every candidate is invalid", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page(`<span class="date">soon</span><span class="published">later</span>`))

		got, ok := goquery.DateRule.First(doc.Selection, goquery.NormalizeDate)

		assert.False(t, ok)
		assert.Empty(t, got)
	})
}

func TestRule_First(t *testing.T) {
	t.Parallel()

	t.Run("accept can rewrite the value", func(t *testing.T) {
		t.Parallel()

		rule := goquery.Rule{Patterns: []goquery.Pattern{{Selector: "h2"}}}
		doc := parse(t, page(`<h2>lower</h2>`))

		got, ok := rule.First(doc.Selection, func(v string) (string, bool) {
			return v + "!", true
		})

		assert.True(t, ok)
		assert.Equal(t, "lower!", got)
	})

	t.Run("falls back to the attribute when the node has no text", func(t *testing.T) {
		t.Parallel()

		rule := goquery.Rule{Patterns: []goquery.Pattern{{Selector: "abbr", Attrs: []string{"title"}}}}
		doc := parse(t, page(`<abbr title="Attribute value"></abbr>`))

		got, ok := rule.First(doc.Selection, nil)

		assert.True(t, ok)
		assert.Equal(t, "Attribute value", got)
	})
}

package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/reader/goquery"
	"github.com/stretchr/testify/assert"
)

func clean(t *testing.T, c *goquery.Cleaner, body string) string {
	t.Helper()

	doc := parse(t, page(body))
	return c.Clean(doc.Find("body"))
}

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("keeps headings and paragraphs above the length threshold", func(t *testing.T) {
		t.Parallel()

		p10 := strings.Repeat("a", 10)
		p30 := strings.Repeat("b", 30)
		p60 := strings.Repeat("c", 60)

		got := clean(t, goquery.NewCleaner(),
			`<h1 class="article-title">Hello World</h1><p>`+p10+`</p><p>`+p30+`</p><p>`+p60+`</p>`)

		assert.Equal(t, `<h1 class="article-title">Hello World</h1><p>`+p30+`</p><p>`+p60+`</p>`, got)
	})

	t.Run("strict threshold drops medium paragraphs", func(t *testing.T) {
		t.Parallel()

		p30 := strings.Repeat("b", 30)
		p60 := strings.Repeat("c", 60)
		c := &goquery.Cleaner{MinTextLength: goquery.StrictMinTextLength, MaxGlyphLength: goquery.DefaultMaxGlyphLength}

		got := clean(t, c, `<p>`+p30+`</p><p>`+p60+`</p>`)

		assert.Equal(t, `<p>`+p60+`</p>`, got)
	})

	t.Run("removes boilerplate regions", func(t *testing.T) {
		t.Parallel()

		filler := "Sponsored words that are long enough to survive."
		got := clean(t, goquery.NewCleaner(),
			`<nav><p>`+filler+`</p></nav>`+
				`<header><p>`+filler+`</p></header>`+
				`<script>var tracking = "long enough to look like text";</script>`+
				`<div class="ads"><p>`+filler+`</p></div>`+
				`<div class="share-buttons"><p>`+filler+`</p></div>`+
				`<aside class="sidebar-widget"><p>`+filler+`</p></aside>`+
				`<p>The actual article paragraph is right here.</p>`+
				`<footer><p>`+filler+`</p></footer>`)

		assert.Equal(t, `<p>The actual article paragraph is right here.</p>`, got)
	})

	t.Run("drops paragraphs with promotional text", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(),
			`<p>Subscribe to our newsletter for weekly updates.</p><p>A paragraph about the actual topic.</p>`)

		assert.Equal(t, `<p>A paragraph about the actual topic.</p>`, got)
	})

	t.Run("does not repeat paragraphs nested in a kept blockquote", func(t *testing.T) {
		t.Parallel()

		quote := `<blockquote><p>This quoted paragraph is certainly long enough.</p></blockquote>`

		got := clean(t, goquery.NewCleaner(), quote)

		assert.Equal(t, quote, got)
		assert.Equal(t, 1, strings.Count(got, "certainly long enough"))
	})

	t.Run("keeps non-empty lists regardless of text length", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(), `<ul><li>One</li><li>Two</li></ul><ol></ol>`)

		assert.Equal(t, `<ul><li>One</li><li>Two</li></ul>`, got)
	})

	t.Run("removes heading anchors but keeps text links", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(),
			`<h2>Section<a class="anchor" href="#section"><svg></svg></a></h2>`+
				`<p>Read the <a href="#notes">notes section</a> for much more detail.</p>`)

		assert.NotContains(t, got, `class="anchor"`)
		assert.NotContains(t, got, "<svg")
		assert.Contains(t, got, `<h2>Section</h2>`)
		assert.Contains(t, got, `<a href="#notes">notes section</a>`)
	})

	t.Run("removes stray separator glyphs", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(),
			`<p>Posted in News <span>|</span> with a long enough tail</p><ul><li>First item</li><li>•</li></ul>`)

		assert.NotContains(t, got, "|")
		assert.NotContains(t, got, "•")
		assert.Contains(t, got, "<li>First item</li>")
	})

	t.Run("rebuilds paragraphs from double line breaks", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(), `<div>Para one text here.<br><br>Para two text here.</div>`)

		assert.Equal(t, `<p>Para one text here.</p><p>Para two text here.</p>`, got)
	})

	t.Run("measures rebuilt segments by markup length", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(),
			`<div><a href="https://example.com/a/long/path">x</a><br><br>short</div>`)

		assert.Equal(t, `<p><a href="https://example.com/a/long/path">x</a></p>`, got)
	})

	t.Run("joins single breaks and keeps inline markup in rebuilt paragraphs", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(),
			`<div>First line of the thought<br>continues <b>here</b>.<br><br>Second paragraph has enough text.</div>`)

		assert.Equal(t,
			`<p>First line of the thought continues <b>here</b>.</p><p>Second paragraph has enough text.</p>`, got)
	})

	t.Run("drops promotional segments between double breaks", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(),
			`<div>Subscribe to our newsletter today<br><br>Real paragraph text that should stay here.</div>`)

		assert.Equal(t, `<p>Real paragraph text that should stay here.</p>`, got)
	})

	t.Run("rebuilds paragraphs from blank lines in plain text", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(),
			"<div>Fish &amp; chips are a fine dinner option\n\nSecond block of plain text here ok\n  \nshort</div>")

		assert.Equal(t, `<p>Fish &amp; chips are a fine dinner option</p><p>Second block of plain text here ok</p>`, got)
	})

	t.Run("returns the cleaned markup when nothing qualifies", func(t *testing.T) {
		t.Parallel()

		got := clean(t, goquery.NewCleaner(), `<div><span>tiny</span></div><script>x()</script>`)

		assert.Equal(t, `<div><span>tiny</span></div>`, got)
	})

	t.Run("returns empty string for an empty selection", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page(`<p>Some paragraph that is long enough.</p>`))

		assert.Empty(t, goquery.NewCleaner().Clean(doc.Find("article")))
		assert.Empty(t, goquery.NewCleaner().Clean(nil))
	})

	t.Run("does not modify the source document", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, page(`<nav>Menu</nav><p>A paragraph that is long enough to keep.</p><script>x()</script>`))
		before, _ := doc.Html()

		first := goquery.NewCleaner().Clean(doc.Find("body"))
		second := goquery.NewCleaner().Clean(doc.Find("body"))
		after, _ := doc.Html()

		assert.Equal(t, before, after)
		assert.Equal(t, first, second)
	})
}

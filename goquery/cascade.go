package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Pattern is a single query in a Rule. Attrs lists attributes that may
// hold the value when the matched node has no text (e.g. meta content).
type Pattern struct {
	Selector string
	Attrs    []string
}

// Rule is an ordered selector cascade. Patterns are evaluated in order and
// the first non-empty, accepted value wins, so more specific patterns must
// come before generic fallbacks.
type Rule struct {
	Patterns []Pattern

	// AttrFirst reads Attrs before the node text.
	AttrFirst bool
}

// AcceptFunc inspects a candidate value and may rewrite it. Returning false
// moves the cascade on to the next pattern.
type AcceptFunc func(value string) (string, bool)

// TitleRule finds the article headline.
var TitleRule = Rule{
	Patterns: []Pattern{
		{Selector: `h1[class*="title"]`},
		{Selector: `h1[class*="headline"]`},
		{Selector: `[class*="article-title"] h1`},
		{Selector: `[class*="post-title"] h1`},
		{Selector: `h1.entry-title`},
		{Selector: `h1`},
		{Selector: `title`},
	},
}

// AuthorRule finds the byline.
var AuthorRule = Rule{
	Patterns: []Pattern{
		{Selector: `[class*="author"] [class*="name"]`},
		{Selector: `[class*="byline"]`},
		{Selector: `[rel="author"]`},
		{Selector: `[class*="writer"]`},
		{Selector: `meta[name="author"]`, Attrs: []string{"content"}},
	},
}

// DateRule finds the publish date. Machine-readable attributes are
// preferred over visible text.
var DateRule = Rule{
	AttrFirst: true,
	Patterns: []Pattern{
		{Selector: `time[datetime]`, Attrs: []string{"datetime"}},
		{Selector: `[class*="date"]`, Attrs: []string{"datetime", "content"}},
		{Selector: `[class*="publish"]`, Attrs: []string{"datetime", "content"}},
		{Selector: `meta[property="article:published_time"]`, Attrs: []string{"content"}},
		{Selector: `meta[name="date"]`, Attrs: []string{"content"}},
	},
}

// ContentContainers lists candidate body containers, semantic ones first.
var ContentContainers = []string{
	`article`,
	`[class*="article-content"]`,
	`[class*="post-content"]`,
	`[class*="entry-content"]`,
	`[class*="content-body"]`,
	`main`,
	`.content`,
	`table`,
	`td`,
	`body`,
}

// First returns the first accepted value found under root. The bool result
// is false when no pattern produced a value; that is a normal outcome and
// callers apply their own default.
func (r Rule) First(root *goquery.Selection, accept AcceptFunc) (string, bool) {
	for _, p := range r.Patterns {
		node := root.Find(p.Selector).First()
		if node.Length() == 0 {
			continue
		}

		value := r.value(node, p.Attrs)
		if value == "" {
			continue
		}

		if accept != nil {
			v, ok := accept(value)
			if !ok {
				continue
			}
			value = v
		}
		return value, true
	}
	return "", false
}

func (r Rule) value(node *goquery.Selection, attrs []string) string {
	text := strings.TrimSpace(node.Text())
	if !r.AttrFirst && text != "" {
		return text
	}

	for _, name := range attrs {
		if v, ok := node.Attr(name); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}

	return text
}

package goquery

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	nethtml "golang.org/x/net/html"
)

// Cleaner thresholds. These were tuned by hand against real sites; keep them
// as they are unless the change is checked against the test pages.
const (
	// DefaultMinTextLength is the number of characters a paragraph,
	// blockquote or reconstructed segment must exceed to count as content.
	DefaultMinTextLength = 20

	// StrictMinTextLength is a more conservative paragraph threshold for
	// pages with lots of short promotional blurbs.
	StrictMinTextLength = 50

	// DefaultMaxGlyphLength is the longest run of stray separator glyphs
	// (bullets, pipes, dashes) removed as a standalone node.
	DefaultMaxGlyphLength = 2
)

const (
	boilerplateSelector = `script, style, noscript, nav, header, footer, ` +
		`.advertisement, .ads, .ad, [class*="advert"], [class*="social"], [class*="share"], ` +
		`[class*="comment"], [class*="sidebar"], [class*="related"], [class*="newsletter"], ` +
		`[class*="popup"], [class*="modal"]`

	decorativeAnchorSelector = `a[href^="#"], a[class*="anchor"], a[class*="permalink"], a[class*="link"]`

	graphicSelector = `svg, img, i, [class*="icon"]`

	iconSelector = `svg, i, [class*="icon"]`

	candidateSelector = `p, ul, ol, h1, h2, h3, h4, h5, h6, blockquote`
)

var (
	doubleBreak = regexp.MustCompile(`(?i)<br\s*/?>\s*<br\s*/?>`)
	singleBreak = regexp.MustCompile(`(?i)<br\s*/?>`)
	blankLine   = regexp.MustCompile(`\n[ \t\r\f\v]*\n`)
)

// Cleaner turns a content container into a fragment of article markup.
// A Cleaner holds no state between calls and is safe for concurrent use.
type Cleaner struct {
	// MinTextLength is the minimum length (exclusive) of a kept paragraph,
	// blockquote or reconstructed segment.
	MinTextLength int

	// MaxGlyphLength is the maximum length (inclusive) of a stray glyph node.
	MaxGlyphLength int
}

// NewCleaner creates a Cleaner with the default thresholds.
func NewCleaner() *Cleaner {
	return &Cleaner{
		MinTextLength:  DefaultMinTextLength,
		MaxGlyphLength: DefaultMaxGlyphLength,
	}
}

// Clean returns the article markup found in container. The container is
// cloned first; the source document is never modified.
//
// Content is taken from the first strategy that produces anything:
// semantic blocks (paragraphs, lists, headings, blockquotes), then text
// separated by double <br> tags, then text separated by blank lines. When
// all of them come up empty the cleaned markup is returned as is.
func (c *Cleaner) Clean(container *goquery.Selection) string {
	if container == nil || container.Length() == 0 {
		return ""
	}

	clone := container.First().Clone()
	clone.Find(boilerplateSelector).Remove()
	c.removeDecorations(clone)

	if blocks := c.contentBlocks(clone); len(blocks) > 0 {
		return strings.Join(blocks, "")
	}

	markup, _ := clone.Html()

	if doubleBreak.MatchString(markup) {
		if paragraphs := c.breakParagraphs(markup, IsUnwanted); len(paragraphs) > 0 {
			return strings.Join(paragraphs, "")
		}
	}

	if paragraphs := c.textParagraphs(clone.Text()); len(paragraphs) > 0 {
		return strings.Join(paragraphs, "")
	}

	return markup
}

// removeDecorations strips heading permalinks, icons and separator glyphs.
func (c *Cleaner) removeDecorations(root *goquery.Selection) {
	root.Find(decorativeAnchorSelector).FilterFunction(func(_ int, a *goquery.Selection) bool {
		return strings.TrimSpace(a.Text()) == "" || a.Find(graphicSelector).Length() > 0
	}).Remove()

	root.Find(iconSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == ""
	}).Remove()

	root.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Children().Length() == 0 && c.isGlyph(strings.TrimSpace(s.Text()))
	}).Remove()
}

// isGlyph reports whether s is a short, non-empty run of bullets,
// punctuation, symbols or spaces.
func (c *Cleaner) isGlyph(s string) bool {
	n := utf8.RuneCountInString(s)
	if n == 0 || n > c.MaxGlyphLength {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// contentBlocks collects qualifying semantic blocks in document order,
// dropping any block nested inside another kept block.
func (c *Cleaner) contentBlocks(root *goquery.Selection) []string {
	candidates := root.Find(candidateSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		switch goquery.NodeName(s) {
		case "ul", "ol":
			return s.Children().Length() > 0
		case "p", "blockquote":
			return c.longEnough(text) && !IsUnwanted(text)
		default:
			return text != "" && !IsUnwanted(text)
		}
	})

	kept := make(map[*nethtml.Node]bool, candidates.Length())
	for _, n := range candidates.Nodes {
		kept[n] = true
	}

	var blocks []string
	candidates.Each(func(_ int, s *goquery.Selection) {
		for p := s.Nodes[0].Parent; p != nil; p = p.Parent {
			if kept[p] {
				return
			}
		}
		if markup, err := goquery.OuterHtml(s); err == nil {
			blocks = append(blocks, markup)
		}
	})

	return blocks
}

// breakParagraphs splits markup on double <br> tags and wraps every
// qualifying segment in a <p>. The length gate applies to the segment
// markup; exclude is checked against the segment's plain text.
func (c *Cleaner) breakParagraphs(markup string, exclude func(text string) bool) []string {
	return lo.FilterMap(doubleBreak.Split(markup, -1), func(segment string, _ int) (string, bool) {
		segment = strings.TrimSpace(singleBreak.ReplaceAllString(segment, " "))
		// Markup length, not text length: tags count toward the threshold.
		if !c.longEnough(segment) {
			return "", false
		}

		frag, err := parseFragment(segment)
		if err != nil {
			return "", false
		}

		text := strings.TrimSpace(frag.Text())
		if text == "" || exclude(text) {
			return "", false
		}

		inner, err := frag.Html()
		if err != nil {
			return "", false
		}
		return "<p>" + strings.TrimSpace(inner) + "</p>", true
	})
}

// textParagraphs splits plain text on blank lines and wraps every long
// enough segment in a <p>.
func (c *Cleaner) textParagraphs(text string) []string {
	return lo.FilterMap(blankLine.Split(text, -1), func(segment string, _ int) (string, bool) {
		segment = strings.TrimSpace(segment)
		if !c.longEnough(segment) {
			return "", false
		}
		return "<p>" + html.EscapeString(segment) + "</p>", true
	})
}

func (c *Cleaner) longEnough(s string) bool {
	return utf8.RuneCountInString(s) > c.MinTextLength
}

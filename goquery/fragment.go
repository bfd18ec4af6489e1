package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// inlineTags are kept when a markup segment is rebuilt into a paragraph.
// Every other element is unwrapped, leaving its children in place.
var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "br": true, "cite": true, "code": true,
	"em": true, "i": true, "img": true, "kbd": true, "mark": true, "q": true,
	"s": true, "small": true, "span": true, "strong": true, "sub": true,
	"sup": true, "time": true, "u": true, "var": true,
}

// parseFragment parses a (possibly unbalanced) markup segment inside a
// detached <div> and unwraps block-level elements, so that the result can
// be placed inside a <p>.
func parseFragment(markup string) (*goquery.Selection, error) {
	root := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	nodes, err := html.ParseFragment(strings.NewReader(markup), root)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	unwrapBlocks(root)
	return goquery.NewDocumentFromNode(root).Selection, nil
}

// unwrapBlocks replaces every non-inline element below n with its children.
// Comments are dropped.
func unwrapBlocks(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		unwrapBlocks(c)

		switch {
		case c.Type == html.CommentNode:
			n.RemoveChild(c)
		case c.Type == html.ElementNode && !inlineTags[c.Data]:
			for gc := c.FirstChild; gc != nil; {
				gnext := gc.NextSibling
				c.RemoveChild(gc)
				n.InsertBefore(gc, c)
				gc = gnext
			}
			n.RemoveChild(c)
		}

		c = next
	}
}

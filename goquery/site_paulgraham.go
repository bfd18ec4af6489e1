package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var _ Site = (*PaulGrahamSite)(nil)

// DefaultMinCellTextLength is the amount of text a table cell must exceed
// to be picked as the article when the known layout table is missing.
const DefaultMinCellTextLength = 1000

// PaulGrahamSite extracts essays from paulgraham.com, which still uses a
// 1990s table layout: an image-map navigation column next to a fixed-width
// content cell, paragraphs separated by <br><br>, and a closing
// "Thanks" acknowledgment section.
type PaulGrahamSite struct {
	// MinCellTextLength is the floor for the largest-cell fallback.
	MinCellTextLength int
}

// NewPaulGrahamSite creates a PaulGrahamSite with default settings.
func NewPaulGrahamSite() *PaulGrahamSite {
	return &PaulGrahamSite{MinCellTextLength: DefaultMinCellTextLength}
}

const (
	paulGrahamHost         = "paulgraham.com"
	paulGrahamLayoutTable  = `table[cellspacing="0"][cellpadding="0"]`
	paulGrahamContentCell  = `td[width="435"]`
	paulGrahamNoise        = `script, style, map, area, img[usemap], hr, table img`
	paulGrahamThanksMarker = "thanks"
)

// paulGrahamNavLabels are the image-map link labels that leak into the
// content cell as bare one-word segments.
var paulGrahamNavLabels = map[string]bool{
	"home": true, "essays": true, "h&n": true, "books": true, "yc": true,
	"arc": true, "bel": true, "lisp": true, "spam": true, "responses": true,
	"faqs": true, "raqs": true, "quotes": true, "rss": true, "bio": true,
	"twitter": true, "mastodon": true, "index": true, "email": true,
}

// Name returns the site's identifier.
func (s *PaulGrahamSite) Name() string {
	return "paulgraham"
}

// Matches reports whether url is on paulgraham.com.
func (s *PaulGrahamSite) Matches(url string) bool {
	return strings.Contains(strings.ToLower(url), paulGrahamHost)
}

// ExtractContent locates the essay cell, strips navigation and the
// acknowledgments, and rebuilds paragraphs from <br><br> separated text.
func (s *PaulGrahamSite) ExtractContent(doc *goquery.Document, cleaner *Cleaner) string {
	cell := s.contentCell(doc)
	if cell == nil {
		body := doc.Find("body").First()
		if body.Length() == 0 {
			body = doc.Selection
		}
		return cleaner.Clean(body)
	}

	clone := cell.Clone()
	clone.Find(paulGrahamNoise).Remove()
	truncateAtThanks(clone)

	markup, _ := clone.Html()
	if paragraphs := cleaner.breakParagraphs(markup, s.excluded); len(paragraphs) > 0 {
		return strings.Join(paragraphs, "")
	}

	return cleaner.Clean(clone)
}

// contentCell finds the essay cell: the fixed-width cell of the layout
// table, else that table's last cell, else the largest cell in the
// document if it holds enough text. It returns nil when nothing qualifies.
func (s *PaulGrahamSite) contentCell(doc *goquery.Document) *goquery.Selection {
	if table := doc.Find(paulGrahamLayoutTable).First(); table.Length() > 0 {
		if cell := table.Find(paulGrahamContentCell).First(); cell.Length() > 0 {
			return cell
		}
		if cells := ownCells(table); cells.Length() > 0 {
			return cells.Last()
		}
	}

	var best *goquery.Selection
	bestLen := 0
	doc.Find("td").Each(func(_ int, td *goquery.Selection) {
		if n := utf8.RuneCountInString(strings.TrimSpace(td.Text())); n > bestLen {
			best, bestLen = td, n
		}
	})
	if best != nil && bestLen > s.MinCellTextLength {
		return best
	}
	return nil
}

func (s *PaulGrahamSite) excluded(text string) bool {
	return IsUnwanted(text) || paulGrahamNavLabels[strings.ToLower(text)]
}

// ownCells returns the cells belonging to table itself, not to tables
// nested inside it.
func ownCells(table *goquery.Selection) *goquery.Selection {
	owner := table.Nodes[0]
	return table.Find("td").FilterFunction(func(_ int, td *goquery.Selection) bool {
		for p := td.Nodes[0].Parent; p != nil; p = p.Parent {
			if p.Type == html.ElementNode && p.Data == "table" {
				return p == owner
			}
		}
		return false
	})
}

// truncateAtThanks removes the first <b>Thanks</b> heading below root and
// everything that follows it in document order.
func truncateAtThanks(root *goquery.Selection) {
	marker := root.Find("b").FilterFunction(func(_ int, b *goquery.Selection) bool {
		return strings.EqualFold(strings.TrimSpace(b.Text()), paulGrahamThanksMarker)
	}).First()
	if marker.Length() == 0 {
		return
	}

	n := marker.Nodes[0]
	stop := root.Nodes[0]
	for cur := n; cur != stop && cur.Parent != nil; cur = cur.Parent {
		for sib := cur.NextSibling; sib != nil; {
			next := sib.NextSibling
			cur.Parent.RemoveChild(sib)
			sib = next
		}
	}
	n.Parent.RemoveChild(n)
}

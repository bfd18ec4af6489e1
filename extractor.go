package reader

// DefaultTitle is used when no title candidate matches.
const DefaultTitle = "Untitled Article"

// DateLayout is the layout every extracted date is rendered with.
const DateLayout = "January 2, 2006"

// Article holds the readable parts extracted from an HTML page.
type Article struct {
	// Title is never empty; it falls back to DefaultTitle.
	Title string `json:"title"`

	// Author and Date may be empty. Date is rendered with DateLayout.
	Author string `json:"author"`
	Date   string `json:"date"`

	// Content is a serialized HTML fragment with boilerplate removed.
	Content string `json:"content"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	return nil
}

// Extractor extracts an article from an HTML page.
type Extractor interface {
	// Extract processes raw HTML fetched from url and returns the article.
	// An error is returned only when the input cannot be parsed at all;
	// missing fields fall back to their defaults instead.
	Extract(html string, url string) (*Article, error)
}

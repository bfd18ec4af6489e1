package reader

import "strings"

// FormatArticle renders an article for a terminal. The body is passed in
// separately so callers can choose between HTML and converted Markdown.
// The byline line is omitted when both author and date are empty.
func FormatArticle(a *Article, body string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(a.Title)
	b.WriteString("\n")

	var byline []string
	if a.Author != "" {
		byline = append(byline, "By "+a.Author)
	}
	if a.Date != "" {
		byline = append(byline, a.Date)
	}
	if len(byline) > 0 {
		b.WriteString(strings.Join(byline, " | "))
		b.WriteString("\n")
	}

	if body != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(body))
		b.WriteString("\n")
	}

	return b.String()
}

package reader

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment (e.g., Article.Content) into Markdown.
	Convert(html string) (string, error)
}

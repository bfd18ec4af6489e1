package reader

import (
	"context"
	"time"
)

// Entry is an extracted article archived together with its source URL.
type Entry struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Date        string    `json:"date"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// NewEntry builds an unsaved entry from an extracted article.
func NewEntry(sourceURL string, a *Article) *Entry {
	return &Entry{
		SourceURL: sourceURL,
		Title:     a.Title,
		Author:    a.Author,
		Date:      a.Date,
		Content:   a.Content,
	}
}

// Article returns the article fields of the entry.
func (e *Entry) Article() *Article {
	return &Article{
		Title:   e.Title,
		Author:  e.Author,
		Date:    e.Date,
		Content: e.Content,
	}
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "entry source URL required")
	}
	if e.Title == "" {
		return Errorf(EINVALID, "entry title required")
	}
	return nil
}

// EntryService represents a service for managing archived articles.
type EntryService interface {
	// CreateEntry creates a new entry. ID, ContentHash and FetchedAt are
	// assigned by the service.
	CreateEntry(ctx context.Context, entry *Entry) error

	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*Entry, error)

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)

	// DeleteEntry permanently removes an entry.
	// Returns ENOTFOUND if entry does not exist.
	DeleteEntry(ctx context.Context, id string) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

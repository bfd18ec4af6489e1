package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/reader"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ reader.EntryService = (*EntryService)(nil)

const entryColumns = "id, source_url, title, author, date, content, content_hash, fetched_at"

// EntryService implements reader.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// CreateEntry creates a new entry.
func (s *EntryService) CreateEntry(ctx context.Context, entry *reader.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.FetchedAt = time.Now().UTC()
	entry.ContentHash = hashContent(entry.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SourceURL, entry.Title, entry.Author, entry.Date, entry.Content,
		entry.ContentHash, entry.FetchedAt.Format(timestampLayout))

	return err
}

// FindEntryByID retrieves an entry by ID.
func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*reader.Entry, error) {
	entries, err := s.FindEntries(ctx, reader.EntryFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, reader.Errorf(reader.ENOTFOUND, "entry not found")
	}
	return entries[0], nil
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *EntryService) FindEntries(ctx context.Context, filter reader.EntryFilter) ([]*reader.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + entryColumns + " FROM entries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*reader.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// DeleteEntry permanently removes an entry.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return reader.Errorf(reader.ENOTFOUND, "entry not found")
	}

	return nil
}

func scanEntry(rows *sql.Rows) (*reader.Entry, error) {
	var entry reader.Entry
	var fetchedAt string

	if err := rows.Scan(&entry.ID, &entry.SourceURL, &entry.Title, &entry.Author, &entry.Date,
		&entry.Content, &entry.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	if entry.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &entry, nil
}

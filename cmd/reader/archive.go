package main

import (
	"fmt"

	"github.com/fwojciec/reader"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := reader.EntryFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'reader --db <path> <url>' to archive one.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", e.ID, e.FetchedAt.Format("2006-01-02"), e.Title, e.SourceURL)
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	entry, err := deps.Entries.FindEntryByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	return render(deps.Stdout, deps.Converter, c.Format, entry.SourceURL, entry.Article())
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintln(deps.Stderr, "Refusing to delete without --force")
		return reader.Errorf(reader.EINVALID, "deletion requires --force")
	}

	if err := deps.Entries.DeleteEntry(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.ID)
	return nil
}

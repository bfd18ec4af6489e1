// Package reader extracts a readable article (title, author, publish date,
// body) from arbitrary HTML pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, readability/).
package reader

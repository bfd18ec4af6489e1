package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/reader"
)

// Extraction engines selectable with --engine.
const (
	EngineHeuristic   = "heuristic"
	EngineReadability = "readability"
	EngineTrafilatura = "trafilatura"
)

// Output formats selectable with --format.
const (
	FormatText     = "text"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   reader.Fetcher
	Extractor reader.Extractor
	Converter reader.Converter

	// Entries and Store are nil unless archiving or file output is enabled.
	Entries reader.EntryService
	Store   reader.ArticleStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  kong.ConfigFlag `help:"YAML file with default flag values"`
	DB      string          `env:"READER_DB" help:"SQLite archive path"`
	Verbose bool            `short:"v" help:"Log fetch and extraction details to stderr"`

	Read   ReadCmd   `cmd:"" default:"withargs" help:"Read articles from URLs (default command)"`
	List   ListCmd   `cmd:"" help:"List archived articles"`
	Show   ShowCmd   `cmd:"" help:"Print an archived article"`
	Delete DeleteCmd `cmd:"" help:"Delete an archived article"`
}

// ReadCmd fetches and extracts articles.
type ReadCmd struct {
	URLs []string `arg:"" name:"url" help:"Article URLs"`

	Engine      string        `short:"e" enum:"heuristic,readability,trafilatura" default:"heuristic" help:"Extraction engine (${enum})"`
	Browser     bool          `short:"b" help:"Render pages in a headless browser"`
	Proxy       bool          `help:"Fetch through the allorigins CORS proxy"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Retries     int           `default:"3" help:"Retries per page with exponential backoff"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64       `name:"rps" default:"0" help:"Requests per second per domain (0 means unlimited)"`
	Format      string        `short:"f" enum:"text,html,markdown,json" default:"text" help:"Output format (${enum})"`
	Out         string        `short:"o" help:"Also save articles as Markdown under this directory"`

	MinTextLength  int `default:"20" help:"Minimum paragraph length kept by the heuristic engine"`
	MaxGlyphLength int `default:"2" help:"Longest separator glyph run removed by the heuristic engine"`
}

// ListCmd prints archived entries.
type ListCmd struct {
	URL    string `help:"Only entries saved from this URL"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of entries"`
	Offset int    `help:"Entries to skip"`
}

// ShowCmd prints one archived entry.
type ShowCmd struct {
	ID     string `arg:"" help:"Entry ID"`
	Format string `short:"f" enum:"text,html,markdown,json" default:"text" help:"Output format (${enum})"`
}

// DeleteCmd removes one archived entry.
type DeleteCmd struct {
	ID    string `arg:"" help:"Entry ID"`
	Force bool   `help:"Confirm deletion"`
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/reader"
	"github.com/fwojciec/reader/fs"
	"github.com/fwojciec/reader/goquery"
	"github.com/fwojciec/reader/htmltomarkdown"
	readerhttp "github.com/fwojciec/reader/http"
	"github.com/fwojciec/reader/readability"
	"github.com/fwojciec/reader/rod"
	readerslog "github.com/fwojciec/reader/slog"
	"github.com/fwojciec/reader/sqlite"
	"github.com/fwojciec/reader/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Archive path used by list, show and delete when --db is not given.
	DBPath string

	// SQLite database, open while a command runs.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("reader"),
		kong.Description("Extract readable articles from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAML),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL specified. Run 'reader --help' for usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Converter = htmltomarkdown.NewConverter()
	command := strings.Fields(kongCtx.Command())[0]

	// Reading only archives when asked to; the archive commands always need it.
	dbPath := cli.DB
	if dbPath == "" && command != "read" {
		dbPath = m.DBPath
	}
	if dbPath != "" {
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set READER_DB or --db to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.Entries = readerslog.NewLoggingEntryService(sqlite.NewEntryService(m.DB), deps.Logger)
	}

	if command == "read" {
		fetcher, err := newFetcher(&cli.Read)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		extractor, err := newExtractor(&cli.Read)
		if err != nil {
			return err
		}

		deps.Fetcher = readerslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Extractor = readerslog.NewLoggingExtractor(extractor, deps.Logger)

		if cli.Read.Out != "" {
			out := filepath.Clean(cli.Read.Out)
			deps.Store = fs.NewFileStore(filepath.Dir(out), filepath.Base(out), deps.Converter)
		}
	}

	return kongCtx.Run(deps)
}

func newFetcher(c *ReadCmd) (reader.Fetcher, error) {
	if c.Browser {
		if c.Proxy {
			return nil, reader.Errorf(reader.EINVALID, "--proxy cannot be combined with --browser")
		}
		f, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return f, nil
	}

	opts := []readerhttp.Option{readerhttp.WithTimeout(c.Timeout)}
	if c.Proxy {
		opts = append(opts, readerhttp.WithProxy(readerhttp.AllOriginsProxy))
	}
	return readerhttp.NewFetcher(opts...), nil
}

func newExtractor(c *ReadCmd) (reader.Extractor, error) {
	switch c.Engine {
	case "", EngineHeuristic:
		cleaner := &goquery.Cleaner{
			MinTextLength:  c.MinTextLength,
			MaxGlyphLength: c.MaxGlyphLength,
		}
		return goquery.NewExtractor(goquery.WithCleaner(cleaner)), nil
	case EngineReadability:
		return readability.NewExtractor(), nil
	case EngineTrafilatura:
		return trafilatura.NewExtractor(), nil
	default:
		return nil, reader.Errorf(reader.EINVALID, "unknown engine %q", c.Engine)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("READER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "reader.db"
	}
	dir := filepath.Join(home, ".reader")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "reader.db")
}

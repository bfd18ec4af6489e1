package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/reader/cmd/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const harborPage = `<html>
<head><title>Harbor News</title><meta name="author" content="Jane Doe"></head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Harbor Reopens After Storm</h1>
<time datetime="2024-01-05">Jan 5</time>
<p>The harbor reopened on Friday after a week of repairs to the main pier.</p>
<p>Fishing boats returned to the docks by the afternoon, crews said.</p>
</article>
<footer>Copyright</footer>
</body>
</html>`

func articleServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/harbor" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(harborPage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// Story: CLI Help

func TestCLI_ShowsHelpWhenAsked(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running with --help flag
	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	// Then: help is displayed without error
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "reader")
	assert.Contains(t, stdout.String(), "list")
}

func TestCLI_ShowsHelpWhenNoArgumentsProvided(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running with no arguments
	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	// Then: help is shown but an error is returned
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "reader")
}

func TestCLI_RejectsUnknownEngine(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--engine", "magic", "https://example.com"}, &stdout, &stderr)

	assert.Error(t, err)
}

// Story: Reading a page end to end
//
// A URL given on the command line is fetched over HTTP, run through the
// heuristic extractor and printed.

func TestCLI_ReadsArticle(t *testing.T) {
	t.Parallel()

	// Given: a server with an article page
	srv := articleServer(t)
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: reading it
	err := m.Run(context.Background(), []string{"--format", "html", srv.URL + "/harbor"}, &stdout, &stderr)

	// Then: the article is printed without navigation or footer
	require.NoError(t, err)
	output := stdout.String()
	assert.True(t, strings.HasPrefix(output, "# Harbor Reopens After Storm\nBy Jane Doe | January 5, 2024\n"))
	assert.Contains(t, output, "<p>The harbor reopened on Friday after a week of repairs to the main pier.</p>")
	assert.NotContains(t, output, "Copyright")
}

func TestCLI_ReportsMissingPage(t *testing.T) {
	t.Parallel()

	// Given: a server without the requested page
	srv := articleServer(t)
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: reading it
	err := m.Run(context.Background(), []string{"--retries", "0", srv.URL + "/gone"}, &stdout, &stderr)

	// Then: an error line is printed and the command fails
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "error: "))
}

// Story: Configuration file
//
// A YAML file passed with --config supplies flag defaults. Flags given on
// the command line win.

func TestCLI_ConfigFileSetsDefaults(t *testing.T) {
	t.Parallel()

	// Given: a config file selecting JSON output
	srv := articleServer(t)
	config := filepath.Join(t.TempDir(), "reader.yaml")
	require.NoError(t, os.WriteFile(config, []byte("format: json\nminTextLength: 20\n"), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: reading without a --format flag
	err := m.Run(context.Background(), []string{"--config", config, srv.URL + "/harbor"}, &stdout, &stderr)

	// Then: the output is JSON
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), `{"url":"`))
}

func TestCLI_FlagsWinOverConfigFile(t *testing.T) {
	t.Parallel()

	// Given: a config file selecting JSON output
	srv := articleServer(t)
	config := filepath.Join(t.TempDir(), "reader.yaml")
	require.NoError(t, os.WriteFile(config, []byte("format: json\n"), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: reading with --format html
	err := m.Run(context.Background(), []string{"--config", config, "--format", "html", srv.URL + "/harbor"}, &stdout, &stderr)

	// Then: the flag wins
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "# Harbor Reopens After Storm\n"))
}

// Story: Archive
//
// With --db every article read is archived. The list, show and delete
// commands work on the archive.

func TestCLI_ArchiveLifecycle(t *testing.T) {
	t.Parallel()

	srv := articleServer(t)
	db := filepath.Join(t.TempDir(), "reader.db")
	m := main.NewMain()

	// Given: an article read with --db
	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{"--db", db, srv.URL + "/harbor"}, &stdout, &stderr)
	require.NoError(t, err)

	// When: listing the archive
	stdout.Reset()
	err = m.Run(context.Background(), []string{"--db", db, "list"}, &stdout, &stderr)

	// Then: the entry is listed
	require.NoError(t, err)
	line := strings.TrimSpace(stdout.String())
	assert.Contains(t, line, "Harbor Reopens After Storm")
	assert.Contains(t, line, srv.URL+"/harbor")
	id := strings.Fields(line)[0]

	// When: showing it
	stdout.Reset()
	err = m.Run(context.Background(), []string{"--db", db, "show", "--format", "html", id}, &stdout, &stderr)

	// Then: the archived article is printed
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "# Harbor Reopens After Storm\n")
	assert.Contains(t, stdout.String(), "Fishing boats returned")

	// When: deleting it
	stdout.Reset()
	err = m.Run(context.Background(), []string{"--db", db, "delete", "--force", id}, &stdout, &stderr)

	// Then: it is gone
	require.NoError(t, err)
	stdout.Reset()
	err = m.Run(context.Background(), []string{"--db", db, "list"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No articles found")
}

func TestCLI_SavesMarkdownFiles(t *testing.T) {
	t.Parallel()

	// Given: an output directory
	srv := articleServer(t)
	out := filepath.Join(t.TempDir(), "articles")
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: reading with --out
	err := m.Run(context.Background(), []string{"--out", out, srv.URL + "/harbor"}, &stdout, &stderr)

	// Then: the article is saved as Markdown under the host directory
	require.NoError(t, err)
	host := strings.TrimPrefix(srv.URL, "http://")
	host = strings.Split(host, ":")[0]
	data, err := os.ReadFile(filepath.Join(out, host, "harbor.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Harbor Reopens After Storm\n")
	assert.Contains(t, string(data), "Fishing boats returned to the docks")
}

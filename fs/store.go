// Package fs saves articles as Markdown files in an output directory.
package fs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/reader"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements reader.ArticleStore at compile time.
var _ reader.ArticleStore = (*FileStore)(nil)

// FileStore implements reader.ArticleStore with atomic update semantics.
// Articles are saved to a temporary directory, then moved into place on Commit.
type FileStore struct {
	baseDir   string
	name      string
	converter reader.Converter

	// Now returns the save date written to the frontmatter.
	Now func() time.Time
}

// NewFileStore creates a new FileStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
// Article bodies are converted to Markdown with conv.
func NewFileStore(baseDir, name string, conv reader.Converter) *FileStore {
	return &FileStore{
		baseDir:   baseDir,
		name:      name,
		converter: conv,
		Now:       time.Now,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the article to host/path.md below the temporary directory.
func (s *FileStore) Save(ctx context.Context, sourceURL string, article *reader.Article) error {
	relPath, err := URLToPath(sourceURL)
	if err != nil {
		return err
	}

	var body string
	if strings.TrimSpace(article.Content) != "" {
		if body, err = s.converter.Convert(article.Content); err != nil {
			return err
		}
	}

	content, err := FormatMarkdown(sourceURL, article, body, s.Now())
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit moves everything saved so far into the output directory. Files
// already there are kept unless an article is saved to the same path.
func (s *FileStore) Commit() error {
	tmp := s.tempDir()
	err := filepath.WalkDir(tmp, func(src string, d iofs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(tmp, src)
		if err != nil {
			return err
		}
		dst := filepath.Join(s.finalDir(), rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		return os.Rename(src, dst)
	})
	if err != nil {
		return err
	}
	return os.RemoveAll(tmp)
}

// Abort discards everything saved since the last Commit.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// URLToPath converts an article URL to a relative file path. A query string
// is kept as a short hash so that distinct pages get distinct files.
// Example: https://example.com/2024/essay.html → example.com/2024/essay.html.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", reader.Errorf(reader.EINVALID, "invalid URL %q", rawURL)
	}
	if u.Hostname() == "" {
		return "", reader.Errorf(reader.EINVALID, "URL has no host: %q", rawURL)
	}

	p := u.Path
	switch {
	case p == "" || p == "/":
		p = "index"
	case strings.HasSuffix(p, "/"):
		p += "index"
	}
	if u.RawQuery != "" {
		p = fmt.Sprintf("%s-%08x", p, uint32(xxhash.Sum64String(u.RawQuery)))
	}

	rel := path.Clean(path.Join(strings.ToLower(u.Hostname()), p))
	if rel == ".." || strings.HasPrefix(rel, "../") || !strings.HasPrefix(rel, strings.ToLower(u.Hostname())+"/") {
		return "", reader.Errorf(reader.EINVALID, "path traversal in %q", rawURL)
	}

	return filepath.FromSlash(rel) + ".md", nil
}

type frontmatter struct {
	Source string `yaml:"source"`
	Title  string `yaml:"title"`
	Author string `yaml:"author,omitempty"`
	Date   string `yaml:"date,omitempty"`
	Saved  string `yaml:"saved"`
}

// FormatMarkdown renders an article as Markdown with YAML frontmatter.
func FormatMarkdown(sourceURL string, article *reader.Article, body string, saved time.Time) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Source: sourceURL,
		Title:  article.Title,
		Author: article.Author,
		Date:   article.Date,
		Saved:  saved.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n# ")
	b.WriteString(article.Title)
	b.WriteString("\n")
	if body = strings.TrimSpace(body); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String(), nil
}

package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/fwojciec/reader"
	"github.com/fwojciec/reader/fs"
)

// jsonResult is one line of --format json output.
type jsonResult struct {
	URL     string          `json:"url"`
	Article *reader.Article `json:"article,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// render writes one article in the requested format.
func render(w io.Writer, conv reader.Converter, format, sourceURL string, a *reader.Article) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(jsonResult{URL: sourceURL, Article: a})
	case FormatHTML:
		_, err := io.WriteString(w, reader.FormatArticle(a, a.Content))
		return err
	}

	body, err := markdownBody(conv, a)
	if err != nil {
		return err
	}

	var out string
	if format == FormatMarkdown {
		if out, err = fs.FormatMarkdown(sourceURL, a, body, time.Now()); err != nil {
			return err
		}
	} else {
		out = reader.FormatArticle(a, body)
	}
	_, err = io.WriteString(w, out)
	return err
}

// renderError writes the failure for one URL.
func renderError(w io.Writer, format, sourceURL string, err error) error {
	if format == FormatJSON {
		return json.NewEncoder(w).Encode(jsonResult{URL: sourceURL, Error: errorMessage(err)})
	}
	_, werr := io.WriteString(w, "error: "+errorMessage(err)+"\n")
	return werr
}

func markdownBody(conv reader.Converter, a *reader.Article) (string, error) {
	if a.Content == "" {
		return "", nil
	}
	return conv.Convert(a.Content)
}

// errorMessage returns the message shown to users. Application errors carry
// their own message; anything else is shown as is.
func errorMessage(err error) string {
	if reader.ErrorCode(err) == reader.EINTERNAL {
		return err.Error()
	}
	return reader.ErrorMessage(err)
}

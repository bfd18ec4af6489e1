package main

import (
	"fmt"

	"github.com/fwojciec/reader"
	"github.com/fwojciec/reader/batch"
)

// Run executes the read command. Every URL gets either its article or an
// error line, in input order. It fails only when no URL could be read.
func (c *ReadCmd) Run(deps *Dependencies) error {
	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Limiter:     batch.NewDomainLimiter(c.RPS),
		Concurrency: c.Concurrency,
		RetryDelays: batch.RetryDelays(c.Retries),
		OnRetry: func(url string, attempt int, err error) {
			fmt.Fprintf(deps.Stderr, "retry %s (attempt %d): %s\n", url, attempt, errorMessage(err))
		},
	}

	progress := func(e batch.ProgressEvent) {
		if deps.Logger == nil || e.Type == batch.ProgressStarted || e.Type == batch.ProgressFinished {
			return
		}
		deps.Logger.Debug("progress", "completed", e.Completed, "total", e.Total, "url", e.URL)
	}

	results := runner.Run(deps.Ctx, c.URLs, progress)

	var read, failed, saved, printed int
	for _, res := range results {
		if res.Duplicate {
			fmt.Fprintf(deps.Stderr, "skip %s: listed more than once\n", res.URL)
			continue
		}
		if printed > 0 && c.Format != FormatJSON {
			fmt.Fprintln(deps.Stdout)
		}
		printed++

		if res.Err != nil {
			failed++
			if err := renderError(deps.Stdout, c.Format, res.URL, res.Err); err != nil {
				return err
			}
			continue
		}
		read++

		if err := render(deps.Stdout, deps.Converter, c.Format, res.URL, res.Article); err != nil {
			if deps.Store != nil {
				_ = deps.Store.Abort()
			}
			return err
		}
		if err := c.archive(deps, res); err != nil {
			fmt.Fprintf(deps.Stderr, "error archiving %s: %s\n", res.URL, errorMessage(err))
			continue
		}
		if deps.Store != nil {
			saved++
		}
	}

	if deps.Store != nil {
		if saved > 0 {
			if err := deps.Store.Commit(); err != nil {
				fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
				return err
			}
			fmt.Fprintf(deps.Stderr, "Saved %d articles\n", saved)
		} else {
			_ = deps.Store.Abort()
		}
	}

	if read == 0 && failed > 0 {
		return reader.Errorf(reader.EINVALID, "no article could be read (%d failed)", failed)
	}
	return nil
}

// archive saves an article to the database and output directory when they
// are configured.
func (c *ReadCmd) archive(deps *Dependencies, res batch.Result) error {
	if deps.Entries != nil {
		if err := deps.Entries.CreateEntry(deps.Ctx, reader.NewEntry(res.URL, res.Article)); err != nil {
			return err
		}
	}
	if deps.Store != nil {
		if err := deps.Store.Save(deps.Ctx, res.URL, res.Article); err != nil {
			return err
		}
	}
	return nil
}

// Package batch reads many article URLs concurrently: it fetches with
// retry and per-domain pacing, extracts, and reports progress.
package batch

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/reader"
	"github.com/fwojciec/reader/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// Runner fetches and extracts a list of URLs.
type Runner struct {
	Fetcher   reader.Fetcher
	Extractor reader.Extractor

	// Limiter is optional.
	Limiter Limiter

	Concurrency int

	// RetryDelays holds the backoff before each retry; nil disables retries.
	RetryDelays []time.Duration
	OnRetry     RetryFunc
}

// Result is the outcome for one input URL.
type Result struct {
	Position int
	URL      string
	Article  *reader.Article

	// Bytes is the size of the fetched page.
	Bytes int
	Err   error

	// Duplicate is set for a URL already listed earlier in the batch.
	Duplicate bool
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Err       error
}

// ProgressFunc receives progress events. Calls are never concurrent.
type ProgressFunc func(event ProgressEvent)

// Run reads every URL and returns one Result per input, in input order.
// Per-URL failures are reported in Result.Err; Run itself does not fail.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) []Result {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	results := make([]Result, len(urls))
	total := len(urls)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	completed := 0
	report := func(res Result) {
		completed++
		event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: res.URL, Err: res.Err}
		switch {
		case res.Duplicate:
			event.Type = ProgressSkipped
		case res.Err != nil:
			event.Type = ProgressFailed
		}
		progress(event)
	}

	seen := bloom.NewFilter(uint(len(urls)), bloom.DefaultFalsePositiveRate)
	var pending []Result
	for i, raw := range urls {
		results[i] = Result{Position: i, URL: raw}

		valid, err := reader.ValidateURL(raw)
		switch {
		case err != nil:
			results[i].Err = err
			report(results[i])
		case seen.CheckAndAdd(valid):
			results[i].URL = valid
			results[i].Duplicate = true
			report(results[i])
		default:
			results[i].URL = valid
			pending = append(pending, results[i])
		}
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan Result, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, res := range pending {
			g.Go(func() error {
				resultCh <- r.read(gctx, res)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		results[res.Position] = res
		report(res)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	return results
}

// read fetches and extracts a single URL.
func (r *Runner) read(ctx context.Context, res Result) Result {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, domainOf(res.URL)); err != nil {
			res.Err = err
			return res
		}
	}

	html, err := FetchWithRetryDelays(ctx, res.URL, r.Fetcher.Fetch, r.OnRetry, r.RetryDelays)
	if err != nil {
		res.Err = err
		return res
	}
	res.Bytes = len(html)

	article, err := r.Extractor.Extract(html, res.URL)
	if err != nil {
		res.Err = err
		return res
	}
	res.Article = article

	return res
}

func domainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

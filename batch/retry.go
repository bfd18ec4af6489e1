package batch

import (
	"context"
	"time"

	"github.com/fwojciec/reader"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryFunc is called before every retry with the upcoming attempt number
// (starting at 2) and the error that caused it.
type RetryFunc func(url string, attempt int, err error)

// RetryDelays returns n exponential backoff delays starting at one second.
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	for i := range n {
		delays = append(delays, time.Second<<i)
	}
	return delays
}

// FetchWithRetryDelays makes up to len(delays)+1 attempts, sleeping
// delays[i] before retry i. Invalid input and missing pages are permanent
// and returned immediately.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, onRetry RetryFunc, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) || permanent(err) {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if onRetry != nil {
			onRetry(url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func permanent(err error) bool {
	switch reader.ErrorCode(err) {
	case reader.EINVALID, reader.ENOTFOUND:
		return true
	}
	return false
}

package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/reader"
	"github.com/fwojciec/reader/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noDelays = []time.Duration{0, 0, 0}

func TestRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, batch.RetryDelays(3))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}, batch.RetryDelays(4))
	assert.Empty(t, batch.RetryDelays(0))
	assert.Empty(t, batch.RetryDelays(-1))
}

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns the first successful attempt", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection reset")
			}
			return "<html></html>", nil
		}

		var retries []int
		html, err := batch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch,
			func(url string, attempt int, err error) { retries = append(retries, attempt) }, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []int{2, 3}, retries)
	})

	t.Run("gives up after every delay is used", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("timeout")
		}

		_, err := batch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.EqualError(t, err, "timeout")
		assert.Equal(t, 4, calls)
	})

	t.Run("does not retry a missing page", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", reader.Errorf(reader.ENOTFOUND, "page not found")
		}

		_, err := batch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)

		assert.Equal(t, reader.ENOTFOUND, reader.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("nil delays make a single attempt", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("boom")
		}

		_, err := batch.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, nil)

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("boom")
		}

		_, err := batch.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

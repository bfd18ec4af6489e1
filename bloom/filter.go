// Package bloom de-duplicates article URLs. A Bloom filter answers the
// common "never seen" case; its hits are confirmed against the exact key set.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultFalsePositiveRate keeps confirmation lookups rare for batches of
// a few thousand.
const DefaultFalsePositiveRate = 0.0001

// Filter remembers URLs that were already queued for reading.
// It is safe for concurrent use by multiple goroutines.
type Filter struct {
	mu   sync.Mutex
	f    *bloom.BloomFilter
	keys map[string]struct{}
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f:    bloom.NewWithEstimates(n, fpRate),
		keys: make(map[string]struct{}, n),
	}
}

// CheckAndAdd records url and reports whether it was recorded before.
// URLs differing only by fragment, host case or a bare trailing slash are
// treated as the same page. Distinct URLs are never reported, whatever the
// filter's false positive rate.
func (f *Filter) CheckAndAdd(url string) bool {
	key := Key(url)

	f.mu.Lock()
	defer f.mu.Unlock()

	maybe := f.f.TestAndAddString(key)
	if _, ok := f.keys[key]; maybe && ok {
		return true
	}
	f.keys[key] = struct{}{}
	return false
}

// Key returns the form of raw used for de-duplication.
func Key(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			return raw[:i]
		}
		return raw
	}

	u.Fragment = ""
	u.RawFragment = ""
	u.Host = strings.ToLower(u.Host)
	if u.Path == "/" && u.RawQuery == "" {
		u.Path = ""
	}
	return u.String()
}

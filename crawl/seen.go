package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/bloom"
)

// Compile-time interface verification.
var _ botica.URLSet = (*SeenURLs)(nil)

// SeenURLs is the run-wide set of product URLs already admitted.
// A Bloom filter answers most negative lookups; positives are confirmed
// against an exact map so no URL is ever wrongly reported as seen.
// It is safe for concurrent use by multiple goroutines.
type SeenURLs struct {
	mu    sync.Mutex
	bloom *bloom.Filter
	exact map[string]struct{}
}

// NewSeenURLs creates a set sized for n expected URLs with the given
// Bloom filter false positive rate.
func NewSeenURLs(n uint, fpRate float64) *SeenURLs {
	return &SeenURLs{
		bloom: bloom.NewFilter(n, fpRate),
		exact: make(map[string]struct{}, n),
	}
}

// Add records the URL.
// Returns false if the URL was already present.
// URLs differing only by fragment are considered the same.
func (s *SeenURLs) Add(rawURL string) bool {
	url := stripFragment(rawURL)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bloom.TestAndAdd(url) {
		if _, ok := s.exact[url]; ok {
			return false
		}
	}
	s.exact[url] = struct{}{}
	return true
}

// Seen returns true if the URL has been added.
func (s *SeenURLs) Seen(rawURL string) bool {
	url := stripFragment(rawURL)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.bloom.Test(url) {
		return false
	}
	_, ok := s.exact[url]
	return ok
}

// Len returns the number of distinct URLs added.
func (s *SeenURLs) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.exact)
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

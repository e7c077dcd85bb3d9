package botica

import "context"

// URLSet records URLs already admitted into the candidate stream.
type URLSet interface {
	// Add records the URL.
	// Returns false if the URL was already present.
	Add(url string) bool

	// Seen returns true if the URL has been added.
	Seen(url string) bool

	// Len returns the number of distinct URLs added.
	Len() int
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

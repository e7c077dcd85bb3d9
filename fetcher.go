package botica

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations must be safe for concurrent use.
type Fetcher interface {
	// Fetch issues a single GET for the URL and returns the response body
	// as UTF-8 HTML. Any non-200 status, network error or timeout is
	// returned as an error; callers treat it as missing data, not as fatal.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases connection resources.
	Close() error
}

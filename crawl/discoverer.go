package crawl

import (
	"context"

	"github.com/fwojciec/botica"
)

// Discoverer finds the top-level categories of a storefront.
type Discoverer struct {
	Fetcher     botica.Fetcher
	Parser      botica.CatalogParser
	RateLimiter botica.DomainLimiter
}

// Discover fetches the home page and returns its menu categories in order.
// On any failure the returned list is empty and the error explains why;
// callers treat both as an empty catalog rather than retrying.
func (d *Discoverer) Discover(ctx context.Context, homeURL string) ([]botica.Category, error) {
	if err := waitForURL(ctx, d.RateLimiter, homeURL); err != nil {
		return nil, err
	}

	html, err := d.Fetcher.Fetch(ctx, homeURL)
	if err != nil {
		return nil, err
	}

	categories, err := d.Parser.ParseCategories(html, homeURL)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

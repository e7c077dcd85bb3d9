package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/botica"
	"golang.org/x/sync/errgroup"
)

// Paginator defaults.
const (
	// DefaultConcurrency is the number of detail fetches in flight per page.
	DefaultConcurrency = 5
	// DefaultMaxPages is the safety ceiling on listing pages per category.
	DefaultMaxPages = 100
)

// CategoryResult summarizes the crawl of one category.
type CategoryResult struct {
	Pages      int
	Candidates int
	Duplicates int
	Filtered   int
	Failed     int
	Records    []*botica.ProductRecord
}

// Paginator walks the listing pages of a category.
//
// Pages are fetched strictly one after another. Within a page, the new
// candidates are processed concurrently by Worker, and the next page is only
// requested once every worker of the current page has returned.
type Paginator struct {
	Fetcher     botica.Fetcher
	Parser      botica.CatalogParser
	Worker      *Worker
	RateLimiter botica.DomainLimiter
	Concurrency int
	MaxPages    int
}

type pageState int

const (
	stateFetchingPage pageState = iota
	stateExtractingCandidates
	stateDispatchingWorkers
	stateCheckingNextPage
	stateDone
)

// Run crawls the category until a page is missing, empty, has no next-page
// link, or the page ceiling is reached. Product URLs already present in seen
// are skipped; new ones are added to it before dispatch.
func (p *Paginator) Run(ctx context.Context, category botica.Category, seen botica.URLSet, progress ProgressFunc) *CategoryResult {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	maxPages := p.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	result := &CategoryResult{}

	var (
		n          = 1
		pageURL    string
		listing    *botica.ListingPage
		candidates []*botica.ProductCandidate
		saved      int
	)

	for state := stateFetchingPage; state != stateDone; {
		switch state {
		case stateFetchingPage:
			if n > maxPages || ctx.Err() != nil {
				state = stateDone
				continue
			}
			pageURL = PageURL(category.URL, n)
			listing = p.fetchListing(ctx, pageURL, progress)
			if listing == nil {
				state = stateDone
				continue
			}
			result.Pages++
			state = stateExtractingCandidates

		case stateExtractingCandidates:
			if listing.Cards == 0 {
				state = stateDone
				continue
			}
			candidates = candidates[:0]
			for _, item := range listing.Items {
				if !seen.Add(item.URL) {
					result.Duplicates++
					continue
				}
				lo, hi := botica.ParsePrice(item.PriceLabel)
				candidates = append(candidates, &botica.ProductCandidate{
					Category:   category.Label,
					Name:       item.Name,
					PriceLabel: item.PriceLabel,
					URL:        item.URL,
					PriceMin:   lo,
					PriceMax:   hi,
				})
			}
			result.Candidates += len(candidates)
			state = stateDispatchingWorkers

		case stateDispatchingWorkers:
			saved = 0
			for _, r := range p.dispatch(ctx, candidates, concurrency) {
				switch {
				case r.Filtered:
					result.Filtered++
				case r.Err != nil:
					result.Failed++
					emit(progress, ProgressEvent{Type: ProgressFailed, Category: category.Label, Page: n, Error: r.Err})
				case r.Record != nil:
					if r.DetailErr != nil {
						emit(progress, ProgressEvent{Type: ProgressFailed, Category: category.Label, Page: n, URL: r.Record.URL, Error: r.DetailErr})
					}
					result.Records = append(result.Records, r.Record)
					saved++
				}
			}
			emit(progress, ProgressEvent{
				Type:     ProgressPage,
				Category: category.Label,
				Page:     n,
				URL:      pageURL,
				Cards:    listing.Cards,
				Saved:    saved,
			})
			state = stateCheckingNextPage

		case stateCheckingNextPage:
			if !listing.HasNext {
				state = stateDone
				continue
			}
			n++
			state = stateFetchingPage
		}
	}

	return result
}

// fetchListing fetches and parses one listing page.
// Returns nil when the page is unavailable or unreadable.
func (p *Paginator) fetchListing(ctx context.Context, pageURL string, progress ProgressFunc) *botica.ListingPage {
	if err := waitForURL(ctx, p.RateLimiter, pageURL); err != nil {
		return nil
	}
	html, err := p.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		emit(progress, ProgressEvent{Type: ProgressFailed, URL: pageURL, Error: err})
		return nil
	}
	listing, err := p.Parser.ParseListing(html, pageURL)
	if err != nil {
		emit(progress, ProgressEvent{Type: ProgressFailed, URL: pageURL, Error: err})
		return nil
	}
	return listing
}

// dispatch processes the candidates with at most concurrency workers and
// returns their results in submission order.
func (p *Paginator) dispatch(ctx context.Context, candidates []*botica.ProductCandidate, concurrency int) []WorkResult {
	results := make([]WorkResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, c := range candidates {
		g.Go(func() error {
			results[i] = p.Worker.Process(gctx, c)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// PageURL returns the URL of the nth listing page of a category.
// The first page is the category URL itself; later pages append
// "page/<n>/" to the category path.
func PageURL(categoryURL string, n int) string {
	if n <= 1 {
		return categoryURL
	}
	u, err := url.Parse(categoryURL)
	if err != nil {
		return strings.TrimRight(categoryURL, "/") + fmt.Sprintf("/page/%d/", n)
	}
	u.Path = strings.TrimRight(u.Path, "/") + fmt.Sprintf("/page/%d/", n)
	u.RawPath = ""
	u.Fragment = ""
	return u.String()
}

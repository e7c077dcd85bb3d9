// Package crawl provides catalog harvesting orchestration.
// It coordinates category discovery, listing pagination, name filtering,
// detail extraction, and deduplication of product records.
package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/botica"
)

// Seen-set sizing for one run.
const (
	// seenExpectedURLs is the expected number of product URLs for Bloom filter sizing.
	seenExpectedURLs = 20000
	// seenFalsePositiveRate is the Bloom filter false positive rate.
	seenFalsePositiveRate = 0.01
)

// Harvester runs a complete harvest of a storefront.
// All run state (seen URLs, collected records) is created per Harvest call.
type Harvester struct {
	Fetcher     botica.Fetcher
	Parser      botica.CatalogParser
	Names       *botica.ReferenceNameSet
	RateLimiter botica.DomainLimiter

	Concurrency int
	MaxPages    int

	// PaceMin and PaceMax bound the random delay before each detail fetch.
	PaceMin time.Duration
	PaceMax time.Duration

	// CategoryPause is the delay between two categories.
	CategoryPause time.Duration
}

// Result holds the outcome of a harvest.
type Result struct {
	Categories int
	Pages      int
	Candidates int
	Duplicates int
	Matched    int
	Filtered   int
	Failed     int

	// Records holds the matching products, deduplicated by URL, in
	// traversal order.
	Records []*botica.ProductRecord
}

// ProgressEvent reports progress during a harvest.
type ProgressEvent struct {
	Type     ProgressType
	Category string
	Index    int
	Page     int
	URL      string
	Cards    int
	Saved    int
	Total    int
	Error    error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressDiscovered reports the number of categories found (Total).
	ProgressDiscovered ProgressType = iota
	// ProgressCategory marks the start of a category (Category, Index, Total).
	ProgressCategory
	// ProgressPage reports a processed listing page (Page, Cards, Saved).
	ProgressPage
	// ProgressFailed reports a skipped URL or product (URL, Error).
	ProgressFailed
	// ProgressFinished marks the end of the harvest (Total records).
	ProgressFinished
)

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

func emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// Harvest discovers the categories linked from homeURL and crawls each of
// them in menu order. It fails only when no reference names are loaded;
// unreachable pages are reported through progress and skipped. An empty
// category list yields an empty Result.
func (h *Harvester) Harvest(ctx context.Context, homeURL string, progress ProgressFunc) (*Result, error) {
	if h.Names == nil || h.Names.Len() == 0 {
		return nil, botica.Errorf(botica.EINVALID, "reference name list is empty")
	}

	discoverer := &Discoverer{
		Fetcher:     h.Fetcher,
		Parser:      h.Parser,
		RateLimiter: h.RateLimiter,
	}
	categories, err := discoverer.Discover(ctx, homeURL)
	if err != nil {
		emit(progress, ProgressEvent{Type: ProgressFailed, URL: homeURL, Error: err})
	}
	emit(progress, ProgressEvent{Type: ProgressDiscovered, Total: len(categories)})

	result := h.HarvestCategories(ctx, categories, progress)
	return result, nil
}

// HarvestCategories crawls the given categories in order with a fresh
// seen-URL set and returns the deduplicated records.
func (h *Harvester) HarvestCategories(ctx context.Context, categories []botica.Category, progress ProgressFunc) *Result {
	seen := NewSeenURLs(seenExpectedURLs, seenFalsePositiveRate)
	paginator := &Paginator{
		Fetcher:     h.Fetcher,
		Parser:      h.Parser,
		RateLimiter: h.RateLimiter,
		Concurrency: h.Concurrency,
		MaxPages:    h.MaxPages,
		Worker: &Worker{
			Fetcher:     h.Fetcher,
			Parser:      h.Parser,
			Names:       h.Names,
			RateLimiter: h.RateLimiter,
			PaceMin:     h.PaceMin,
			PaceMax:     h.PaceMax,
		},
	}

	result := &Result{Categories: len(categories)}
	var records []*botica.ProductRecord

	for i, category := range categories {
		if ctx.Err() != nil {
			break
		}
		if i > 0 && !sleep(ctx, h.CategoryPause) {
			break
		}

		emit(progress, ProgressEvent{Type: ProgressCategory, Category: category.Label, URL: category.URL, Index: i + 1, Total: len(categories)})

		cr := paginator.Run(ctx, category, seen, progress)
		result.Pages += cr.Pages
		result.Candidates += cr.Candidates
		result.Duplicates += cr.Duplicates
		result.Filtered += cr.Filtered
		result.Matched += cr.Candidates - cr.Filtered
		result.Failed += cr.Failed
		records = append(records, cr.Records...)
	}

	result.Records = DedupByURL(records)
	result.Duplicates += len(records) - len(result.Records)

	emit(progress, ProgressEvent{Type: ProgressFinished, Total: len(result.Records)})
	return result
}

// DedupByURL returns the records with duplicate URLs removed, keeping the
// first occurrence and preserving order.
func DedupByURL(records []*botica.ProductRecord) []*botica.ProductRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]*botica.ProductRecord, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.URL]; ok {
			continue
		}
		seen[r.URL] = struct{}{}
		out = append(out, r)
	}
	return out
}

// sleep waits for d or until ctx is done.
// Returns false if the context ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

package crawl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/botica"
)

// WorkResult is the outcome of processing one product candidate.
type WorkResult struct {
	// Record is the assembled product, or nil when the candidate was
	// filtered out or processing failed.
	Record *botica.ProductRecord

	// Filtered is true when the name did not match the reference list.
	Filtered bool

	// Err is set when processing failed and no record was produced.
	Err error

	// DetailErr is set when the detail page could not be fetched or parsed.
	// The record is still produced, with placeholder detail fields.
	DetailErr error
}

// Worker turns a product candidate into a report record.
// A single Worker is shared by all goroutines of a page batch.
type Worker struct {
	Fetcher     botica.Fetcher
	Parser      botica.CatalogParser
	Names       *botica.ReferenceNameSet
	RateLimiter botica.DomainLimiter

	// PaceMin and PaceMax bound the random delay before each detail fetch.
	PaceMin time.Duration
	PaceMax time.Duration
}

// Process filters the candidate by name and, only when it matches, fetches
// and parses its detail page. A panic while handling the candidate is
// recovered and reported in WorkResult.Err so one product cannot abort its
// batch.
func (w *Worker) Process(ctx context.Context, candidate *botica.ProductCandidate) (result WorkResult) {
	if !w.Names.Matches(candidate.Name) {
		return WorkResult{Filtered: true}
	}

	defer func() {
		if r := recover(); r != nil {
			result = WorkResult{Err: botica.Errorf(botica.EINTERNAL, "process %s: %v", candidate.URL, r)}
		}
	}()

	if err := w.pace(ctx); err != nil {
		return WorkResult{Err: err}
	}
	if err := waitForURL(ctx, w.RateLimiter, candidate.URL); err != nil {
		return WorkResult{Err: err}
	}

	detail := botica.NewDetail()
	html, detailErr := w.Fetcher.Fetch(ctx, candidate.URL)
	if detailErr == nil {
		var parsed botica.Detail
		if parsed, detailErr = w.Parser.ParseDetail(html); detailErr == nil {
			detail = parsed
		}
	}

	return WorkResult{
		Record:    botica.NewProductRecord(candidate, detail),
		DetailErr: detailErr,
	}
}

// pace sleeps for a random duration in [PaceMin, PaceMax].
func (w *Worker) pace(ctx context.Context) error {
	d := w.PaceMin
	if spread := w.PaceMax - w.PaceMin; spread > 0 {
		d += time.Duration(rand.Int64N(int64(spread) + 1))
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/botica"
)

// Ensure LoggingCatalogParser implements botica.CatalogParser.
var _ botica.CatalogParser = (*LoggingCatalogParser)(nil)

// LoggingCatalogParser wraps a CatalogParser with debug logging.
type LoggingCatalogParser struct {
	next   botica.CatalogParser
	logger *slog.Logger
}

// NewLoggingCatalogParser creates a new LoggingCatalogParser.
func NewLoggingCatalogParser(next botica.CatalogParser, logger *slog.Logger) *LoggingCatalogParser {
	return &LoggingCatalogParser{next: next, logger: logger}
}

// ParseCategories logs the number of menu categories found.
func (p *LoggingCatalogParser) ParseCategories(html, homeURL string) (categories []botica.Category, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse categories",
			"url", homeURL,
			"count", len(categories),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseCategories(html, homeURL)
}

// ParseListing logs the cards and links found on a listing page.
func (p *LoggingCatalogParser) ParseListing(html, pageURL string) (page *botica.ListingPage, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", pageURL, "duration", time.Since(begin), "err", err}
		if page != nil {
			attrs = append(attrs, "cards", page.Cards, "items", len(page.Items), "next", page.HasNext)
		}
		p.logger.Info("parse listing", attrs...)
	}(time.Now())
	return p.next.ParseListing(html, pageURL)
}

// ParseDetail delegates to the wrapped parser. Detail pages are already
// logged by the fetcher.
func (p *LoggingCatalogParser) ParseDetail(html string) (botica.Detail, error) {
	return p.next.ParseDetail(html)
}

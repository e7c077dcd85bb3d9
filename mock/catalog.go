package mock

import "github.com/fwojciec/botica"

var _ botica.CatalogParser = (*CatalogParser)(nil)

// CatalogParser is a mock implementation of botica.CatalogParser.
type CatalogParser struct {
	ParseCategoriesFn func(html, homeURL string) ([]botica.Category, error)
	ParseListingFn    func(html, pageURL string) (*botica.ListingPage, error)
	ParseDetailFn     func(html string) (botica.Detail, error)
}

func (p *CatalogParser) ParseCategories(html, homeURL string) ([]botica.Category, error) {
	return p.ParseCategoriesFn(html, homeURL)
}

func (p *CatalogParser) ParseListing(html, pageURL string) (*botica.ListingPage, error) {
	return p.ParseListingFn(html, pageURL)
}

func (p *CatalogParser) ParseDetail(html string) (botica.Detail, error) {
	return p.ParseDetailFn(html)
}

package botica

// ListingPage is the parsed content of one category listing page.
type ListingPage struct {
	// Cards is the number of product cards on the page, including cards
	// that were skipped because they had no title link.
	Cards int

	// Items holds the usable product cards in document order.
	Items []ListingItem

	// HasNext reports whether the page links to a following page.
	HasNext bool
}

// ListingItem is a product card as it appears on a listing page.
type ListingItem struct {
	Name       string
	PriceLabel string
	URL        string // absolute
}

// CatalogParser reads the storefront's HTML structures.
type CatalogParser interface {
	// ParseCategories returns the top-level categories linked from the
	// home page navigation menu, in menu order.
	// Returns ENOTFOUND if the menu container is missing.
	ParseCategories(html string, homeURL string) ([]Category, error)

	// ParseListing returns the product cards of a category listing page.
	// Relative links are resolved against pageURL.
	ParseListing(html string, pageURL string) (*ListingPage, error)

	// ParseDetail extracts the detail attributes of a product page.
	// The returned Detail is always fully shaped.
	ParseDetail(html string) (Detail, error)
}

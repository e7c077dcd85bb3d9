package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/botica"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ensure CatalogParser implements botica.CatalogParser at compile time.
var _ botica.CatalogParser = (*CatalogParser)(nil)

// CatalogParser reads menus, listing grids and product pages.
// It holds no mutable state and is safe for concurrent use.
type CatalogParser struct {
	selectors Selectors
}

// NewCatalogParser creates a parser using the given selectors.
func NewCatalogParser(selectors Selectors) *CatalogParser {
	return &CatalogParser{selectors: selectors}
}

// ParseCategories returns the top-level categories of the navigation menu.
// Only direct children of the menu container are considered, so nested
// sub-categories are never returned. Links must point into the same site
// and contain the category path.
func (p *CatalogParser) ParseCategories(html string, homeURL string) ([]botica.Category, error) {
	base, err := url.Parse(homeURL)
	if err != nil {
		return nil, botica.Errorf(botica.EINVALID, "invalid home URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, botica.Errorf(botica.EINVALID, "failed to parse HTML: %v", err)
	}

	menu := doc.Find(p.selectors.Menu).First()
	if menu.Length() == 0 {
		return nil, botica.Errorf(botica.ENOTFOUND, "menu %q not found", p.selectors.Menu)
	}

	seen := make(map[string]bool)
	var categories []botica.Category

	menu.ChildrenFiltered(p.selectors.MenuItem).Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a[href]").First()
		href, _ := link.Attr("href")

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}

		u, err := url.Parse(resolved)
		if err != nil {
			return
		}
		if !isSameSite(u.Host, base.Host) || !strings.Contains(u.Path, p.selectors.CategoryPath) {
			return
		}

		seen[resolved] = true
		categories = append(categories, botica.Category{
			Label: CategoryLabel(resolved, link.Text()),
			URL:   resolved,
		})
	})

	return categories, nil
}

// ParseListing returns the product cards of a listing page.
// Cards without a title link are counted but not returned.
func (p *CatalogParser) ParseListing(html string, pageURL string) (*botica.ListingPage, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, botica.Errorf(botica.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, botica.Errorf(botica.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &botica.ListingPage{
		HasNext: doc.Find(p.selectors.NextPage).Length() > 0,
	}

	doc.Find(p.selectors.Product).Each(func(_ int, card *goquery.Selection) {
		page.Cards++

		title := card.Find(p.selectors.ProductTitle).First()
		if title.Length() == 0 {
			return
		}
		href, _ := title.Attr("href")
		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		page.Items = append(page.Items, botica.ListingItem{
			Name:       strings.TrimSpace(title.Text()),
			PriceLabel: flattenText(card.Find(p.selectors.ProductPrice).First()),
			URL:        resolved,
		})
	})

	return page, nil
}

// ParseDetail parses a product page and extracts its detail attributes.
func (p *CatalogParser) ParseDetail(html string) (botica.Detail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return botica.NewDetail(), botica.Errorf(botica.EINVALID, "failed to parse HTML: %v", err)
	}
	return ExtractDetail(doc, p.selectors), nil
}

// CategoryLabel derives a display label from the last path segment of a
// category URL: "cuidado-personal" becomes "Cuidado Personal".
// The fallback text is used when the URL has no usable segment.
func CategoryLabel(categoryURL string, fallback string) string {
	var segment string
	if u, err := url.Parse(categoryURL); err == nil {
		segment = path.Base(strings.TrimRight(u.Path, "/"))
	}
	if segment == "" || segment == "." || segment == "/" {
		return strings.Join(strings.Fields(fallback), " ")
	}
	if unescaped, err := url.PathUnescape(segment); err == nil {
		segment = unescaped
	}
	return cases.Title(language.Spanish).String(strings.ReplaceAll(segment, "-", " "))
}

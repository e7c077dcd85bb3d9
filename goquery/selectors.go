// Package goquery implements botica.CatalogParser on top of goquery CSS
// selectors for WooCommerce storefronts built on the Woodmart theme.
package goquery

// Selectors names the storefront structures the parser reads.
type Selectors struct {
	// Menu is the navigation container whose direct children are the
	// top-level categories.
	Menu string
	// MenuItem selects the direct children of Menu.
	MenuItem string
	// CategoryPath must appear in a category link's path.
	CategoryPath string

	// Product selects one product card on a listing page.
	Product string
	// ProductTitle selects the title link inside a product card.
	ProductTitle string
	// ProductPrice selects the price label inside a product card.
	ProductPrice string
	// NextPage is present on listing pages that have a following page.
	NextPage string

	// AccordionItem selects one labeled section of a detail page.
	AccordionItem string
	// AccordionTitle and AccordionContent select inside an AccordionItem.
	AccordionTitle   string
	AccordionContent string
	// AttributeRow selects one row of the product attributes table.
	AttributeRow string
}

// DefaultSelectors returns the selectors of a Woodmart storefront.
func DefaultSelectors() Selectors {
	return Selectors{
		Menu:         "ul#menu-mega-menu-categorias",
		MenuItem:     "li",
		CategoryPath: "/c/",

		Product:      "div.wd-product",
		ProductTitle: ".wd-entities-title a",
		ProductPrice: ".price",
		NextPage:     ".next",

		AccordionItem:    "div.wd-accordion-item",
		AccordionTitle:   ".wd-accordion-title-text",
		AccordionContent: ".woocommerce-Tabs-panel",
		AttributeRow:     "tr.woocommerce-product-attributes-item",
	}
}

package botica

import "strconv"

// Unspecified is the placeholder stored in a detail field that could not be
// found on the product page.
const Unspecified = "No especificado"

// ReportColumns lists the report headers in the order produced by ProductRecord.Row.
var ReportColumns = []string{
	"Category",
	"Name",
	"Price Minimum",
	"Price Maximum",
	"URL",
	"Registration",
	"Composition",
	"Description",
	"Warnings",
	"Contraindications",
}

// Category is a top-level catalog section discovered from the site menu.
type Category struct {
	Label string
	URL   string
}

// ProductCandidate is a product card found on a category listing page,
// before filtering and enrichment.
type ProductCandidate struct {
	Category   string
	Name       string
	PriceLabel string
	URL        string // absolute detail page URL

	// PriceMin and PriceMax are parsed from PriceLabel when the card is read.
	PriceMin float64
	PriceMax float64
}

// Detail holds the semi-structured attributes read from a product detail page.
type Detail struct {
	Registration      string
	Composition       string
	Description       string
	Warnings          string
	Contraindications string
}

// NewDetail returns a Detail with every field set to Unspecified.
func NewDetail() Detail {
	return Detail{
		Registration:      Unspecified,
		Composition:       Unspecified,
		Description:       Unspecified,
		Warnings:          Unspecified,
		Contraindications: Unspecified,
	}
}

// ProductRecord is one row of the harvest report.
// Every detail field is always present, holding Unspecified when unknown.
type ProductRecord struct {
	Category   string
	Name       string
	PriceLabel string
	PriceMin   float64
	PriceMax   float64
	URL        string

	Detail
}

// NewProductRecord assembles a record from a candidate and its detail.
func NewProductRecord(c *ProductCandidate, d Detail) *ProductRecord {
	return &ProductRecord{
		Category:   c.Category,
		Name:       c.Name,
		PriceLabel: c.PriceLabel,
		PriceMin:   c.PriceMin,
		PriceMax:   c.PriceMax,
		URL:        c.URL,
		Detail:     d,
	}
}

// Row returns the record's cells in ReportColumns order.
func (r *ProductRecord) Row() []string {
	return []string{
		r.Category,
		r.Name,
		FormatPrice(r.PriceMin),
		FormatPrice(r.PriceMax),
		r.URL,
		r.Registration,
		r.Composition,
		r.Description,
		r.Warnings,
		r.Contraindications,
	}
}

// FormatPrice formats a price with two fraction digits.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

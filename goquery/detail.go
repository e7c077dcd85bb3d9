package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/botica"
	"golang.org/x/net/html"
)

// sectionField maps a keyword found in an accordion title to the detail
// field it fills. Keywords are checked in order; the first hit wins.
type sectionField struct {
	keyword string
	set     func(d *botica.Detail, v string)
}

var sectionFields = []sectionField{
	{"descripci", func(d *botica.Detail, v string) { d.Description = v }},
	{"advertencia", func(d *botica.Detail, v string) { d.Warnings = v }},
	{"contraindicaci", func(d *botica.Detail, v string) { d.Contraindications = v }},
	{"composici", func(d *botica.Detail, v string) { d.Composition = v }},
}

// ExtractDetail scans the accordion sections and the attributes table of a
// product page. Fields not found keep the botica.Unspecified placeholder.
//
// When several sections map to the same field the last one wins. The
// attributes table always sets the registration, but only fills the
// composition when no accordion section provided it.
func ExtractDetail(doc *goquery.Document, selectors Selectors) botica.Detail {
	d := botica.NewDetail()

	doc.Find(selectors.AccordionItem).Each(func(_ int, item *goquery.Selection) {
		title := item.Find(selectors.AccordionTitle).First()
		content := item.Find(selectors.AccordionContent).First()
		if title.Length() == 0 || content.Length() == 0 {
			return
		}

		value := flattenText(content)
		if value == "" {
			return
		}

		label := strings.ToLower(strings.TrimSpace(title.Text()))
		for _, f := range sectionFields {
			if strings.Contains(label, f.keyword) {
				f.set(&d, value)
				return
			}
		}
	})

	doc.Find(selectors.AttributeRow).Each(func(_ int, row *goquery.Selection) {
		th := row.Find("th").First()
		td := row.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return
		}

		value := strings.TrimSpace(td.Text())
		if value == "" {
			return
		}

		label := strings.ToLower(strings.TrimSpace(th.Text()))
		switch {
		case strings.Contains(label, "registro") || strings.Contains(label, "sanitario"):
			d.Registration = value
		case strings.Contains(label, "composici") && d.Composition == botica.Unspecified:
			d.Composition = value
		}
	})

	return d
}

// flattenText joins the selection's text nodes with single spaces so that
// adjacent paragraphs do not run together.
func flattenText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if f := strings.Fields(n.Data); len(f) > 0 {
				parts = append(parts, strings.Join(f, " "))
			}
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

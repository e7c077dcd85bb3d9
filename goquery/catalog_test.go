package goquery_test

import (
	"testing"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homeHTML = `<html><body>
<nav>
<ul id="menu-mega-menu-categorias">
  <li><a href="https://www.shop.example/c/farmacia/">Farmacia</a>
    <ul>
      <li><a href="https://www.shop.example/c/farmacia/analgesicos/">Analgésicos</a></li>
    </ul>
  </li>
  <li><a href="/c/cuidado-personal/">Cuidado personal</a></li>
  <li><a href="https://www.shop.example/ofertas/">Ofertas</a></li>
  <li><a href="https://other.example/c/externa/">Externa</a></li>
  <li><span>Sin enlace</span></li>
  <li><a href="https://shop.example/c/nutricion/">Nutrición</a></li>
  <li><a href="https://www.shop.example/c/farmacia/#top">Farmacia otra vez</a></li>
</ul>
</nav>
<ul id="menu-footer"><li><a href="https://www.shop.example/c/footer/">Footer</a></li></ul>
</body></html>`

func TestCatalogParser_ParseCategories(t *testing.T) {
	t.Parallel()

	parser := goquery.NewCatalogParser(goquery.DefaultSelectors())

	t.Run("returns direct menu children linking to category paths", func(t *testing.T) {
		t.Parallel()

		categories, err := parser.ParseCategories(homeHTML, "https://www.shop.example")

		require.NoError(t, err)
		assert.Equal(t, []botica.Category{
			{Label: "Farmacia", URL: "https://www.shop.example/c/farmacia/"},
			{Label: "Cuidado Personal", URL: "https://www.shop.example/c/cuidado-personal/"},
			{Label: "Nutricion", URL: "https://shop.example/c/nutricion/"},
		}, categories)
	})

	t.Run("returns ENOTFOUND when menu is missing", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseCategories("<html><body><ul><li>x</li></ul></body></html>", "https://www.shop.example")

		require.Error(t, err)
		assert.Equal(t, botica.ENOTFOUND, botica.ErrorCode(err))
	})

	t.Run("returns empty list for empty menu", func(t *testing.T) {
		t.Parallel()

		categories, err := parser.ParseCategories(`<ul id="menu-mega-menu-categorias"></ul>`, "https://www.shop.example")

		require.NoError(t, err)
		assert.Empty(t, categories)
	})

	t.Run("returns EINVALID for bad home URL", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseCategories(homeHTML, "://bad")

		require.Error(t, err)
		assert.Equal(t, botica.EINVALID, botica.ErrorCode(err))
	})
}

const listingHTML = `<html><body>
<div class="products">
  <div class="wd-product">
    <h3 class="wd-entities-title"><a href="/p/paracetamol-500mg/">Paracetamol 500mg</a></h3>
    <span class="price"><span>S/</span> <bdi>4.50</bdi></span>
  </div>
  <div class="wd-product">
    <h3 class="wd-entities-title"><a href="https://www.shop.example/p/ibuprofeno/">  Ibuprofeno 400mg  </a></h3>
    <span class="price"><del>S/ 12.00</del> <ins>S/ 9.90</ins></span>
  </div>
  <div class="wd-product">
    <h3 class="wd-entities-title">Sin enlace</h3>
  </div>
  <div class="wd-product">
    <h3 class="wd-entities-title"><a href="https://www.shop.example/p/agotado/">Vitamina C</a></h3>
  </div>
</div>
<a class="next page-numbers" href="/c/farmacia/page/2/">→</a>
</body></html>`

func TestCatalogParser_ParseListing(t *testing.T) {
	t.Parallel()

	parser := goquery.NewCatalogParser(goquery.DefaultSelectors())

	t.Run("extracts product cards in document order", func(t *testing.T) {
		t.Parallel()

		page, err := parser.ParseListing(listingHTML, "https://www.shop.example/c/farmacia/")

		require.NoError(t, err)
		assert.Equal(t, 4, page.Cards)
		assert.True(t, page.HasNext)
		assert.Equal(t, []botica.ListingItem{
			{Name: "Paracetamol 500mg", PriceLabel: "S/ 4.50", URL: "https://www.shop.example/p/paracetamol-500mg/"},
			{Name: "Ibuprofeno 400mg", PriceLabel: "S/ 12.00 S/ 9.90", URL: "https://www.shop.example/p/ibuprofeno/"},
			{Name: "Vitamina C", PriceLabel: "", URL: "https://www.shop.example/p/agotado/"},
		}, page.Items)
	})

	t.Run("reports no next page on last page", func(t *testing.T) {
		t.Parallel()

		html := `<div class="wd-product"><h3 class="wd-entities-title"><a href="/p/a/">A</a></h3></div>`
		page, err := parser.ParseListing(html, "https://www.shop.example/c/farmacia/page/3/")

		require.NoError(t, err)
		assert.False(t, page.HasNext)
		assert.Len(t, page.Items, 1)
	})

	t.Run("returns zero cards for an empty grid", func(t *testing.T) {
		t.Parallel()

		page, err := parser.ParseListing("<html><body><p>No hay productos</p></body></html>", "https://www.shop.example/c/x/")

		require.NoError(t, err)
		assert.Equal(t, 0, page.Cards)
		assert.Empty(t, page.Items)
	})
}

func TestCategoryLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		fallback string
		want     string
	}{
		{name: "slug with hyphens", url: "https://shop.example/c/cuidado-personal/", want: "Cuidado Personal"},
		{name: "no trailing slash", url: "https://shop.example/c/farmacia", want: "Farmacia"},
		{name: "escaped segment", url: "https://shop.example/c/beb%C3%A9/", want: "Bebé"},
		{name: "falls back to link text", url: "https://shop.example/", fallback: "  Inicio \n", want: "Inicio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, goquery.CategoryLabel(tt.url, tt.fallback))
		})
	}
}

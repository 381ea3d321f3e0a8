package pages

import (
	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/components"
	"pehlione.com/storefront/templates/shared"
)

var sortOptions = [][2]string{
	{"", "Featured"},
	{"price_asc", "Price: low to high"},
	{"price_desc", "Price: high to low"},
	{"rating", "Top rated"},
	{"reviews", "Most reviewed"},
	{"name", "Name"},
}

func Catalog(flash *view.Flash, p view.CatalogPage) templ.Component {
	return components.Layout(components.LayoutProps{Title: p.Title, Flash: flash}, shared.Render(func(m *shared.Markup) {
		m.Raw(`<h1 class="mb-6 text-2xl font-semibold">`)
		m.Text(p.Title)
		m.Raw(`</h1>`)
		m.Component(catalogFilterForm(p.Filter, p.Errors))

		if len(p.Products) == 0 {
			m.Raw(`<p class="empty-state text-gray-600">No laptops match your filters.</p>`)
			return
		}
		m.Raw(`<div class="grid gap-6 sm:grid-cols-2 lg:grid-cols-4">`)
		for _, card := range p.Products {
			m.Component(components.ProductCard(card))
		}
		m.Raw(`</div>`)
	}))
}

func catalogFilterForm(f view.CatalogFilter, errs map[string]string) templ.Component {
	return shared.Render(func(m *shared.Markup) {
		if msg := errs["_"]; msg != "" {
			m.Raw(`<p class="form-error mb-3 text-sm text-red-600" role="alert">`)
			m.Text(msg)
			m.Raw(`</p>`)
		}
		m.Raw(`<form method="get" action="/" class="catalog-filter mb-8 flex flex-wrap items-end gap-3 text-sm">`)
		fieldErr := func(name string) {
			if msg := errs[name]; msg != "" {
				m.Raw(`<span class="field-error text-xs text-red-600">`)
				m.Text(msg)
				m.Raw(`</span>`)
			}
		}
		input := func(name, label, value, typ string) {
			m.Raw(`<label class="flex flex-col gap-1">`)
			m.Text(label)
			m.Raw(`<input class="rounded border px-2 py-1"`)
			m.Attr("type", typ)
			m.Attr("name", name)
			m.Attr("value", value)
			m.Flag(`step="any"`, typ == "number")
			m.Raw(">")
			fieldErr(name)
			m.Raw(`</label>`)
		}
		input("q", "Search", f.Q, "search")
		input("min_price", "Min price", f.MinPrice, "number")
		input("max_price", "Max price", f.MaxPrice, "number")
		input("min_rating", "Min rating", f.MinRating, "number")

		m.Raw(`<label class="flex flex-col gap-1">Sort<select name="sort" class="rounded border px-2 py-1">`)
		for _, opt := range sortOptions {
			m.Raw("<option")
			m.Raw(` value="` + templ.EscapeString(opt[0]) + `"`)
			m.Flag("selected", opt[0] == f.Sort)
			m.Raw(">")
			m.Text(opt[1])
			m.Raw("</option>")
		}
		m.Raw(`</select>`)
		fieldErr("sort")
		m.Raw(`</label><button type="submit" class="rounded bg-gray-900 px-3 py-1.5 text-white">Apply</button></form>`)
	})
}

package pages

import (
	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/components"
	"pehlione.com/storefront/templates/shared"
)

func ProductDetail(flash *view.Flash, p view.ProductDetailPage) templ.Component {
	pr := p.Product
	return components.Layout(components.LayoutProps{Title: pr.Name, Flash: flash}, shared.Render(func(m *shared.Markup) {
		m.Raw(`<article class="product-detail grid gap-8 md:grid-cols-2"`)
		m.Attr("data-slug", p.Slug)
		m.Raw(`><img class="w-full rounded-lg object-cover"`)
		m.Href("src", pr.ImageURL)
		m.Attr("alt", pr.Name)
		m.Raw(`><div><h1 class="text-2xl font-semibold">`)
		m.Text(pr.Name)
		m.Raw(`</h1><p class="mb-4 text-gray-600">`)
		m.Text(pr.Model)
		m.Raw(`</p>`)
		m.Component(components.Rating(pr.Rating, pr.Reviews))
		m.Raw(`<dl class="my-6 grid grid-cols-2 gap-2 text-sm"><dt class="text-gray-500">Processor</dt><dd>`)
		m.Text(pr.Processor)
		m.Raw(`</dd><dt class="text-gray-500">Storage</dt><dd>`)
		m.Text(pr.Storage)
		m.Raw(`</dd></dl>`)
		m.Component(components.Price(pr.Price, pr.OriginalPrice, pr.DiscountPercent))
		m.Raw(`<p class="mt-6 text-sm"><a class="text-blue-600 hover:underline"`)
		m.Href("href", p.JSONURL)
		m.Raw(`>View as JSON</a></p></div></article>`)
	}))
}

package components

import (
	"fmt"
	"math"
	"strconv"

	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/shared"
)

// Rating renders five stars, filled up to the rounded rating, and the review count.
func Rating(rating float64, reviews int) templ.Component {
	filled := int(math.Round(rating))
	return shared.Render(func(m *shared.Markup) {
		m.Raw(`<div class="rating flex items-center gap-1 text-sm"`)
		m.Attr("aria-label", fmt.Sprintf("Rated %.1f out of 5", rating))
		m.Raw(">")
		for i := 1; i <= 5; i++ {
			class := "h-4 w-4 text-gray-300"
			if i <= filled {
				class = "h-4 w-4 fill-current text-amber-400"
			}
			m.Component(Icon("star", class))
		}
		m.Raw(`<span class="ml-1 text-gray-600">`)
		m.Text(strconv.FormatFloat(rating, 'f', 1, 64))
		m.Raw(` (`)
		m.Text(strconv.Itoa(reviews))
		m.Raw(`)</span></div>`)
	})
}

// Price shows the final price and, for discounted products, the struck list price.
func Price(price, original string, discount int) templ.Component {
	return shared.Render(func(m *shared.Markup) {
		m.Raw(`<div class="price flex items-baseline gap-2"><span class="text-lg font-semibold">`)
		m.Text(price)
		m.Raw(`</span>`)
		if discount > 0 {
			m.Raw(`<span class="text-sm text-gray-500 line-through">`)
			m.Text(original)
			m.Raw(`</span><span class="rounded bg-red-100 px-1.5 text-xs font-medium text-red-700">-`)
			m.Text(strconv.Itoa(discount))
			m.Raw(`%</span>`)
		}
		m.Raw(`</div>`)
	})
}

func ProductCard(p view.ProductCard) templ.Component {
	return shared.Render(func(m *shared.Markup) {
		m.Raw(`<article class="product-card rounded-lg border bg-white p-4 shadow-sm"`)
		m.Attr("data-product-id", strconv.Itoa(p.ID))
		m.Raw("><a")
		m.Href("href", p.URL)
		m.Raw(` class="block"><img loading="lazy" class="mb-3 aspect-video w-full rounded object-cover"`)
		m.Href("src", p.ImageURL)
		m.Attr("alt", p.Name)
		m.Raw(`><h2 class="font-medium">`)
		m.Text(p.Name)
		m.Raw(`</h2><p class="text-sm text-gray-600">`)
		m.Text(p.Model)
		m.Raw(`</p></a><ul class="my-2 text-sm text-gray-700"><li>`)
		m.Text(p.Processor)
		m.Raw(`</li><li>`)
		m.Text(p.Storage)
		m.Raw(`</li></ul>`)
		m.Component(Rating(p.Rating, p.Reviews))
		m.Component(Price(p.Price, p.OriginalPrice, p.DiscountPercent))
		m.Raw(`</article>`)
	})
}

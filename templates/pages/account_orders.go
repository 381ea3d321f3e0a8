package pages

import (
	"strconv"

	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/components"
	"pehlione.com/storefront/templates/shared"
)

func AccountOrders(flash *view.Flash, p view.AccountOrdersPage) templ.Component {
	return components.Layout(components.LayoutProps{Title: "My orders", Flash: flash}, shared.Render(func(m *shared.Markup) {
		m.Raw(`<h1 class="mb-6 text-2xl font-semibold">My orders</h1>`)
		if len(p.Items) == 0 {
			m.Raw(`<div class="empty-state rounded-lg border bg-white p-8 text-center"><p class="mb-4 text-gray-600">You have no orders yet.</p><a class="text-blue-600 hover:underline"`)
			m.Href("href", p.ShopURL)
			m.Raw(`>Browse laptops</a></div>`)
			return
		}
		m.Raw(`<table class="w-full text-sm"><thead><tr><th>Order</th><th>Status</th><th>Items</th><th>Total</th></tr></thead><tbody>`)
		for _, it := range p.Items {
			m.Raw(`<tr><td>`)
			m.Text(it.Number)
			m.Raw(`</td><td>`)
			m.Text(it.Status)
			m.Raw(`</td><td>`)
			m.Text(strconv.Itoa(it.ItemCount))
			m.Raw(`</td><td>`)
			m.Text(it.Total)
			m.Raw(`</td></tr>`)
		}
		m.Raw(`</tbody></table>`)
	}))
}

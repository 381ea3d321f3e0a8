package pages

import (
	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/components"
	"pehlione.com/storefront/templates/shared"
)

// scrollResetScript runs once when the page is shown.
const scrollResetScript = `<script>window.addEventListener("DOMContentLoaded",function(){window.scrollTo(0, 0);},{once:true});</script>`

func OrderConfirmation(flash *view.Flash, p view.OrderConfirmation) templ.Component {
	return components.Layout(components.LayoutProps{Title: "Order confirmed", Flash: flash}, shared.Render(func(m *shared.Markup) {
		m.Raw(scrollResetScript)
		m.Raw(`<section class="order-confirmation mx-auto max-w-xl rounded-lg border bg-white p-8 text-center shadow-sm">`)
		m.Component(components.Icon("check-circle", "mx-auto mb-4 h-16 w-16 text-green-600"))
		m.Raw(`<h1 class="mb-2 text-2xl font-semibold">Thank you for your order!</h1>`)
		m.Raw(`<p class="mb-2 text-gray-600">Your order has been placed successfully. A confirmation email is on its way with the details of your purchase.</p>`)
		if p.OrderRef != "" {
			m.Raw(`<p class="order-ref mb-2 text-sm">Order number: <strong>`)
			m.Text(p.OrderRef)
			m.Raw(`</strong></p>`)
		}
		m.Raw(`<p class="mb-8 text-sm text-gray-500">You can follow its status at any time from your order history.</p>`)
		m.Raw(`<div class="flex flex-col justify-center gap-3 sm:flex-row">`)
		m.Raw(`<a data-nav="order-history" class="rounded-md bg-gray-900 px-4 py-2 text-white hover:bg-gray-700"`)
		m.Href("href", p.OrderHistoryURL)
		m.Raw(`>View my orders</a>`)
		m.Raw(`<a data-nav="home" class="rounded-md border px-4 py-2 hover:bg-gray-100"`)
		m.Href("href", p.HomeURL)
		m.Raw(`>Continue shopping</a></div></section>`)
	}))
}

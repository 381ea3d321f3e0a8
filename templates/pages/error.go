package pages

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/components"
	"pehlione.com/storefront/templates/shared"
)

func Error(status int, msg string, requestID string, flash *view.Flash) templ.Component {
	title := strconv.Itoa(status) + " " + http.StatusText(status)
	return components.Layout(components.LayoutProps{Title: title, Flash: flash}, shared.Render(func(m *shared.Markup) {
		m.Raw(`<section class="error-page text-center"><h1 class="mb-2 text-3xl font-semibold">`)
		m.Text(title)
		m.Raw(`</h1><p class="mb-4 text-gray-700">`)
		m.Text(msg)
		m.Raw(`</p>`)
		if requestID != "" {
			m.Raw(`<p class="text-xs text-gray-400">Request ID: `)
			m.Text(requestID)
			m.Raw(`</p>`)
		}
		m.Raw(`<a href="/" class="mt-6 inline-block text-blue-600 hover:underline">Back to the shop</a></section>`)
	}))
}

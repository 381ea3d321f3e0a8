package components

import (
	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/shared"
)

type LayoutProps struct {
	Title string
	Flash *view.Flash
	Admin bool
}

// confirmScript asks before submitting forms that carry data-confirm.
const confirmScript = `<script>document.addEventListener("submit",function(e){var m=e.target.getAttribute("data-confirm");if(m&&!window.confirm(m)){e.preventDefault();}});</script>`

// Layout is the shared page shell: head, navigation, flash banner and body.
func Layout(p LayoutProps, body templ.Component) templ.Component {
	return shared.Render(func(m *shared.Markup) {
		m.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		m.Text(p.Title)
		m.Raw(` · Pehlione</title><link rel="stylesheet" href="/static/app.css"></head>`)
		m.Raw(`<body class="min-h-screen bg-gray-50 text-gray-900">`)
		m.Raw(`<header class="border-b bg-white"><nav class="mx-auto flex max-w-6xl items-center justify-between px-4 py-3">`)
		m.Raw(`<a href="/" class="text-lg font-semibold">Pehlione</a><div class="flex gap-4 text-sm">`)
		m.Raw(`<a href="/">Laptops</a><a href="/account/orders">Orders</a>`)
		if p.Admin {
			m.Raw(`<a href="/admin/catalog" class="font-medium">Admin</a>`)
		}
		m.Raw(`</div></nav></header><main class="mx-auto max-w-6xl px-4 py-8">`)
		m.Component(FlashBanner(p.Flash))
		m.Component(body)
		m.Raw(`</main>`)
		m.Raw(confirmScript)
		m.Raw(`</body></html>`)
	})
}

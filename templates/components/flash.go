package components

import (
	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/shared"
)

var flashClasses = map[view.FlashKind]string{
	view.FlashInfo:    "border-blue-200 bg-blue-50 text-blue-800",
	view.FlashSuccess: "border-green-200 bg-green-50 text-green-800",
	view.FlashWarning: "border-amber-200 bg-amber-50 text-amber-800",
	view.FlashError:   "border-red-200 bg-red-50 text-red-800",
}

func FlashBanner(f *view.Flash) templ.Component {
	if f == nil || f.Message == "" {
		return templ.NopComponent
	}
	class, ok := flashClasses[f.Kind]
	if !ok {
		class = flashClasses[view.FlashInfo]
	}
	return shared.Render(func(m *shared.Markup) {
		m.Raw(`<div role="status"`)
		m.Attr("class", shared.Classes("flash mb-6 rounded-md border px-4 py-3 text-sm", class))
		m.Attr("data-flash", string(f.Kind))
		m.Raw(">")
		m.Text(f.Message)
		m.Raw("</div>")
	})
}

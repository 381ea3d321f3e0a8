package pages

import (
	"strconv"

	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/components"
	"pehlione.com/storefront/templates/shared"
)

func AdminCatalog(flash *view.Flash, p view.AdminCatalogPage) templ.Component {
	return components.Layout(components.LayoutProps{Title: "Catalog", Flash: flash, Admin: true}, shared.Render(func(m *shared.Markup) {
		m.Raw(`<div class="mb-6 flex items-center justify-between"><h1 class="text-2xl font-semibold">Catalog</h1>`)
		m.Raw(`<div class="layout-switch flex gap-2 text-sm">`)
		for _, l := range []view.ActionLayout{view.LayoutInline, view.LayoutDropdown} {
			class := "rounded border px-2 py-1"
			if l == p.Layout {
				class += " bg-gray-900 text-white"
			}
			m.Raw("<a")
			m.Href("href", "/admin/catalog?layout="+string(l)+"&size="+string(p.Size))
			m.Attr("class", class)
			m.Raw(">")
			m.Text(string(l))
			m.Raw("</a>")
		}
		m.Raw(`</div></div>`)

		m.Raw(`<table class="admin-catalog w-full border-collapse bg-white text-sm"><thead class="bg-gray-100 text-left"><tr>`)
		for _, h := range []string{"ID", "Name", "Model", "Processor", "Storage", "Price", "Discount", "Rating", "Reviews", ""} {
			m.Raw(`<th class="px-3 py-2">`)
			m.Text(h)
			m.Raw(`</th>`)
		}
		m.Raw(`</tr></thead><tbody>`)
		for _, r := range p.Rows {
			m.Raw(`<tr class="border-t"`)
			m.Attr("data-row-id", strconv.Itoa(r.ID))
			m.Raw(">")
			for _, cell := range []string{strconv.Itoa(r.ID), r.Name, r.Model, r.Processor, r.Storage, r.Price, r.Discount, r.Rating, strconv.Itoa(r.Reviews)} {
				m.Raw(`<td class="px-3 py-2">`)
				m.Text(cell)
				m.Raw(`</td>`)
			}
			m.Raw(`<td class="px-3 py-2">`)
			m.Component(components.ActionButtons(components.ActionButtonsProps{
				Actions: r.Actions,
				Layout:  p.Layout,
				Size:    p.Size,
				Class:   "justify-end",
			}))
			m.Raw(`</td></tr>`)
		}
		m.Raw(`</tbody></table>`)
	}))
}

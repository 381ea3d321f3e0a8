package components

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/shared"
)

type ActionButtonsProps struct {
	Actions []view.Action
	Layout  view.ActionLayout
	Size    view.ActionSize
	Class   string
}

type sizeClasses struct {
	button string
	icon   string
}

var actionSizes = map[view.ActionSize]sizeClasses{
	view.SizeSmall:  {button: "p-1 text-xs", icon: "h-3.5 w-3.5"},
	view.SizeMedium: {button: "p-1.5 text-sm", icon: "h-4 w-4"},
	view.SizeLarge:  {button: "p-2 text-base", icon: "h-5 w-5"},
}

const actionBase = "action-btn inline-flex items-center gap-1 rounded-md transition-colors"

func sizeFor(s view.ActionSize) sizeClasses {
	if sc, ok := actionSizes[s]; ok {
		return sc
	}
	return actionSizes[view.SizeMedium]
}

// ActionButtons renders a row of action controls, or a single menu trigger in
// the dropdown layout. The dropdown has no menu yet: it only renders the
// trigger, whatever the number of actions.
func ActionButtons(p ActionButtonsProps) templ.Component {
	sz := sizeFor(p.Size)

	if p.Layout == view.LayoutDropdown {
		return shared.Render(func(m *shared.Markup) {
			m.Raw(`<div`)
			m.Attr("class", shared.Classes("action-menu relative inline-block text-left", p.Class))
			m.Raw(`><button type="button" aria-haspopup="menu" aria-expanded="false" title="Actions" aria-label="Actions"`)
			m.Attr("class", shared.Classes("action-menu-trigger", actionBase, sz.button, "text-gray-600 hover:bg-gray-100"))
			m.Raw(">")
			m.Component(Icon("more-vertical", sz.icon))
			m.Raw("</button></div>")
		})
	}

	return shared.Render(func(m *shared.Markup) {
		m.Raw(`<div`)
		m.Attr("class", shared.Classes("action-buttons flex items-center gap-1", p.Class))
		m.Raw(">")
		for _, a := range p.Actions {
			m.Component(actionControl(a, sz))
		}
		m.Raw("</div>")
	})
}

func actionControl(a view.Action, sz sizeClasses) templ.Component {
	return shared.Render(func(m *shared.Markup) {
		class := shared.Classes(actionBase, sz.button, a.ResolvedClass())
		inner := func() {
			m.Component(Icon(a.ResolvedIcon(), sz.icon))
			if a.Label != "" {
				m.Raw("<span>")
				m.Text(a.Label)
				m.Raw("</span>")
			}
		}
		common := func() {
			m.Attr("title", a.ResolvedTooltip())
			m.Attr("aria-label", a.AccessibleName())
			m.Attr("data-action", string(a.Kind))
		}

		switch {
		case a.Disabled:
			m.Raw(`<button type="button" disabled aria-disabled="true"`)
			m.Attr("class", shared.Classes(class, "opacity-50 cursor-not-allowed"))
			common()
			m.Raw(">")
			inner()
			m.Raw("</button>")

		case a.Target.IsLink():
			m.Raw("<a")
			m.Href("href", a.Target.URL)
			m.Attr("class", class)
			common()
			m.Raw(">")
			inner()
			m.Raw("</a>")

		default:
			m.Raw(`<form method="post" class="inline"`)
			m.Href("action", a.Target.URL)
			m.Attr("data-confirm", a.Target.Confirm)
			m.Raw(">")
			if method := strings.ToUpper(a.Target.Method); method != http.MethodPost {
				m.Raw(`<input type="hidden" name="_method"`)
				m.Attr("value", method)
				m.Raw(">")
			}
			m.Raw(`<button type="submit"`)
			m.Attr("class", class)
			common()
			m.Raw(">")
			inner()
			m.Raw("</button></form>")
		}
	})
}

package components

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pehlione.com/storefront/pkg/view"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestActionButtonsKindDefaults(t *testing.T) {
	for _, kind := range []view.ActionKind{
		view.ActionEdit, view.ActionDelete, view.ActionDuplicate, view.ActionView, view.ActionCustom,
	} {
		t.Run(string(kind), func(t *testing.T) {
			d := view.DefaultsFor(kind)
			html := render(t, ActionButtons(ActionButtonsProps{
				Actions: []view.Action{{Kind: kind, Target: view.Link("/x")}},
			}))

			assert.Contains(t, html, `data-icon="`+d.Icon+`"`)
			assert.Contains(t, html, `title="`+d.Tooltip+`"`)
			assert.Contains(t, html, d.Class)
		})
	}
}

func TestActionButtonsExplicitFieldsWin(t *testing.T) {
	html := render(t, ActionButtons(ActionButtonsProps{
		Actions: []view.Action{{
			Kind:    view.ActionDelete,
			Target:  view.Link("/x"),
			Icon:    "code",
			Tooltip: "Inspect",
			Class:   "text-purple-700",
		}},
	}))

	d := view.DefaultsFor(view.ActionDelete)
	assert.Contains(t, html, `data-icon="code"`)
	assert.Contains(t, html, `title="Inspect"`)
	assert.Contains(t, html, "text-purple-700")
	assert.NotContains(t, html, `data-icon="`+d.Icon+`"`)
	assert.NotContains(t, html, d.Class)
	assert.NotContains(t, html, `title="Delete"`)
}

func TestActionButtonsDisabledIsNotInteractive(t *testing.T) {
	html := render(t, ActionButtons(ActionButtonsProps{
		Actions: []view.Action{
			{Kind: view.ActionEdit, Target: view.Link("/products/1/edit"), Disabled: true},
			{Kind: view.ActionDelete, Target: view.Submit(http.MethodDelete, "/products/1", ""), Disabled: true},
		},
	}))

	assert.Equal(t, 2, strings.Count(html, `disabled aria-disabled="true"`))
	assert.NotContains(t, html, "<a")
	assert.NotContains(t, html, "<form")
	assert.NotContains(t, html, "/products/1")
	assert.Contains(t, html, "cursor-not-allowed")
}

func TestActionButtonsLinkAndForm(t *testing.T) {
	html := render(t, ActionButtons(ActionButtonsProps{
		Actions: []view.Action{
			{Kind: view.ActionView, Target: view.Link("/products/3"), Label: "Open"},
			{Kind: view.ActionDuplicate, Target: view.Submit(http.MethodPost, "/admin/products/3/duplicate", "")},
			{Kind: view.ActionDelete, Target: view.Submit(http.MethodDelete, "/admin/products/3", "Sure?")},
		},
	}))

	assert.Contains(t, html, `<a href="/products/3"`)
	assert.Contains(t, html, `aria-label="Open"`)
	assert.Contains(t, html, "<span>Open</span>")
	assert.Contains(t, html, `action="/admin/products/3/duplicate"`)
	assert.Contains(t, html, `action="/admin/products/3" data-confirm="Sure?"`)
	assert.Equal(t, 1, strings.Count(html, `name="_method"`), "only the non-POST form overrides the method")
	assert.Contains(t, html, `value="DELETE"`)

	// Order of controls follows the descriptors.
	assert.Less(t, strings.Index(html, `data-action="view"`), strings.Index(html, `data-action="duplicate"`))
	assert.Less(t, strings.Index(html, `data-action="duplicate"`), strings.Index(html, `data-action="delete"`))
}

func TestActionButtonsDropdownRendersOneTrigger(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		actions := make([]view.Action, n)
		for i := range actions {
			actions[i] = view.Action{Kind: view.ActionEdit, Target: view.Link("/edit")}
		}
		html := render(t, ActionButtons(ActionButtonsProps{
			Actions: actions,
			Layout:  view.LayoutDropdown,
		}))

		assert.Equal(t, 1, strings.Count(html, "<button"), "actions=%d", n)
		assert.Equal(t, 1, strings.Count(html, "action-menu-trigger"), "actions=%d", n)
		assert.NotContains(t, html, "/edit")
		assert.NotContains(t, html, `role="menu"`)
	}
}

func TestActionButtonsSizesAndClass(t *testing.T) {
	actions := []view.Action{{Kind: view.ActionView, Target: view.Link("/v")}}

	small := render(t, ActionButtons(ActionButtonsProps{Actions: actions, Size: view.SizeSmall, Class: "justify-end"}))
	assert.Contains(t, small, "p-1 text-xs")
	assert.Contains(t, small, "h-3.5 w-3.5")
	assert.Contains(t, small, `class="action-buttons flex items-center gap-1 justify-end"`)

	large := render(t, ActionButtons(ActionButtonsProps{Actions: actions, Size: view.SizeLarge}))
	assert.Contains(t, large, "p-2 text-base")

	fallback := render(t, ActionButtons(ActionButtonsProps{Actions: actions, Size: "xl"}))
	assert.Contains(t, fallback, "p-1.5 text-sm")
}

func TestActionButtonsEscapesUserText(t *testing.T) {
	html := render(t, ActionButtons(ActionButtonsProps{
		Actions: []view.Action{{Kind: view.ActionCustom, Target: view.Link("/x"), Label: `<script>x</script>`}},
	}))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestIconUnknownName(t *testing.T) {
	html := render(t, Icon("nope", "h-4 w-4"))
	assert.Contains(t, html, `data-icon="nope"`)
	assert.True(t, strings.HasSuffix(html, "></svg>"))
}

package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pehlione.com/storefront/internal/modules/catalog"
	"pehlione.com/storefront/internal/storage"
	"pehlione.com/storefront/pkg/view"
)

func TestParseLayoutAndSize(t *testing.T) {
	assert.Equal(t, view.LayoutInline, parseLayout(""))
	assert.Equal(t, view.LayoutInline, parseLayout("grid"))
	assert.Equal(t, view.LayoutDropdown, parseLayout(" Dropdown "))

	assert.Equal(t, view.SizeSmall, parseSize(""))
	assert.Equal(t, view.SizeSmall, parseSize("xl"))
	assert.Equal(t, view.SizeMedium, parseSize("md"))
	assert.Equal(t, view.SizeLarge, parseSize("LG"))
}

func TestRowActions(t *testing.T) {
	h := NewCatalogHandler(catalog.NewService(catalog.NewStaticRepo()), storage.NewLocal(t.TempDir(), "/uploads"))

	p := catalog.All()[2]
	actions := h.rowActions(p)
	require.Len(t, actions, 3)

	assert.Equal(t, view.ActionView, actions[0].Kind)
	assert.Equal(t, "/products/3", actions[0].Target.URL)
	assert.Equal(t, "code", actions[1].ResolvedIcon())
	assert.Equal(t, "/api/products/3", actions[1].Target.URL)
	assert.Equal(t, "/uploads/products/dell-xps-13.jpg", actions[2].Target.URL)
	assert.False(t, actions[2].Disabled)

	p.Image = ""
	assert.True(t, h.rowActions(p)[2].Disabled)
}

func TestDiscountLabel(t *testing.T) {
	items := catalog.All()
	assert.Equal(t, "15% (€934.15)", discountLabel(items[2]))
	assert.Equal(t, "-", discountLabel(items[1]))
}

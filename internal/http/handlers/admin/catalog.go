package admin

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"pehlione.com/storefront/internal/http/middleware"
	"pehlione.com/storefront/internal/http/render"
	"pehlione.com/storefront/internal/modules/catalog"
	"pehlione.com/storefront/internal/shared/apperr"
	"pehlione.com/storefront/internal/storage"
	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/pages"
)

type CatalogHandler struct {
	svc    *catalog.Service
	assets storage.Storage
}

func NewCatalogHandler(svc *catalog.Service, assets storage.Storage) *CatalogHandler {
	return &CatalogHandler{svc: svc, assets: assets}
}

// List renders the catalog table with row actions. The catalog is read-only,
// so rows offer view and inspection actions but no edit, duplicate or delete.
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	rows := make([]view.AdminCatalogRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, view.AdminCatalogRow{
			ID:        p.ID,
			Name:      p.Name,
			Model:     p.Model,
			Processor: p.Processor,
			Storage:   p.Storage,
			Price:     view.Money(p.Price, catalog.Currency),
			Discount:  discountLabel(p),
			Rating:    strconv.FormatFloat(p.Rating, 'f', 1, 64),
			Reviews:   p.Reviews,
			Actions:   h.rowActions(p),
		})
	}

	render.Component(c, http.StatusOK, pages.AdminCatalog(middleware.GetFlash(c), view.AdminCatalogPage{
		Rows:   rows,
		Layout: parseLayout(c.Query("layout")),
		Size:   parseSize(c.Query("size")),
	}))
}

func (h *CatalogHandler) rowActions(p catalog.Product) []view.Action {
	actions := view.RecordActions(p, view.ActionCallbacks[catalog.Product]{
		View: func(p catalog.Product) view.ActionTarget { return view.Link(p.Path()) },
	}, nil)

	return append(actions,
		view.Action{
			Kind:    view.ActionCustom,
			Target:  view.Link("/api/products/" + strconv.Itoa(p.ID)),
			Icon:    "code",
			Tooltip: "Open JSON",
		},
		view.Action{
			Kind:     view.ActionCustom,
			Target:   view.Link(h.assets.URL(p.Image)),
			Icon:     "image",
			Tooltip:  "Open image",
			Disabled: p.Image == "",
		},
	)
}

func discountLabel(p catalog.Product) string {
	if !p.HasDiscount() {
		return "-"
	}
	return fmt.Sprintf("%d%% (%s)", p.DiscountPercent, view.Money(p.FinalPrice(), catalog.Currency))
}

func parseLayout(s string) view.ActionLayout {
	if view.ActionLayout(strings.ToLower(strings.TrimSpace(s))) == view.LayoutDropdown {
		return view.LayoutDropdown
	}
	return view.LayoutInline
}

func parseSize(s string) view.ActionSize {
	switch sz := view.ActionSize(strings.ToLower(strings.TrimSpace(s))); sz {
	case view.SizeSmall, view.SizeMedium, view.SizeLarge:
		return sz
	default:
		return view.SizeSmall
	}
}

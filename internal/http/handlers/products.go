package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pehlione.com/storefront/internal/http/flash"
	"pehlione.com/storefront/internal/http/middleware"
	"pehlione.com/storefront/internal/http/render"
	"pehlione.com/storefront/internal/modules/catalog"
	"pehlione.com/storefront/internal/shared/apperr"
	"pehlione.com/storefront/internal/storage"
	"pehlione.com/storefront/pkg/view"
	"pehlione.com/storefront/templates/pages"
)

// ProductsHandler serves the storefront listing and product pages.
type ProductsHandler struct {
	svc    *catalog.Service
	assets storage.Storage
	flash  *flash.Codec
}

func NewProductsHandler(svc *catalog.Service, assets storage.Storage, fl *flash.Codec) *ProductsHandler {
	return &ProductsHandler{svc: svc, assets: assets, flash: fl}
}

// List renders the catalog grid with the filter form.
func (h *ProductsHandler) List(c *gin.Context) {
	vm := view.CatalogPage{Title: "Laptops"}

	q, filter, errs := bindCatalogQuery(c)
	vm.Filter = filter
	if len(errs) > 0 {
		vm.Errors = errs
		render.Component(c, http.StatusBadRequest, pages.Catalog(middleware.GetFlash(c), vm))
		return
	}

	items, err := h.svc.Filter(c.Request.Context(), q)
	if err != nil {
		if fe, ok := queryFieldErrors(err); ok {
			vm.Errors = fe
			render.Component(c, http.StatusBadRequest, pages.Catalog(middleware.GetFlash(c), vm))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	vm.Products = productCards(items, h.assets)
	render.Component(c, http.StatusOK, pages.Catalog(middleware.GetFlash(c), vm))
}

// Show renders one product, looked up by id or slug.
func (h *ProductsHandler) Show(c *gin.Context) {
	p, err := h.svc.Find(c.Request.Context(), c.Param("ref"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			msg := "That laptop is not in our catalog."
			if s, ok, serr := h.svc.Suggest(c.Request.Context(), c.Param("ref")); serr == nil && ok {
				msg += " Did you mean " + s.Name + " " + s.Model + "?"
			}
			render.RedirectWithFlash(c, h.flash, "/", view.FlashWarning, msg)
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Component(c, http.StatusOK, pages.ProductDetail(middleware.GetFlash(c), view.ProductDetailPage{
		Product: productCard(p, h.assets),
		Slug:    p.Slug(),
		JSONURL: "/api/products/" + strconv.Itoa(p.ID),
	}))
}

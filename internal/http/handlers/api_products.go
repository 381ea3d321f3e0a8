package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pehlione.com/storefront/internal/http/middleware"
	"pehlione.com/storefront/internal/modules/catalog"
	"pehlione.com/storefront/internal/shared/apperr"
	"pehlione.com/storefront/internal/storage"
)

type productJSON struct {
	ID         int     `json:"id"`
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	Model      string  `json:"model"`
	Processor  string  `json:"processor"`
	Storage    string  `json:"storage"`
	Price      string  `json:"price"`
	FinalPrice string  `json:"final_price"`
	Currency   string  `json:"currency"`
	Discount   int     `json:"discount,omitempty"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	ImageURL   string  `json:"image_url"`
	URL        string  `json:"url"`
}

// ProductsAPI exposes the catalog as JSON.
type ProductsAPI struct {
	svc    *catalog.Service
	assets storage.Storage
}

func NewProductsAPI(svc *catalog.Service, assets storage.Storage) *ProductsAPI {
	return &ProductsAPI{svc: svc, assets: assets}
}

func (h *ProductsAPI) List(c *gin.Context) {
	q, _, errs := bindCatalogQuery(c)
	if len(errs) > 0 {
		middleware.Fail(c, apperr.InvalidErr("Invalid catalog filter.", errs))
		return
	}

	items, err := h.svc.Filter(c.Request.Context(), q)
	if err != nil {
		if fe, ok := queryFieldErrors(err); ok {
			middleware.Fail(c, apperr.InvalidErr("Invalid catalog filter.", fe))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := make([]productJSON, 0, len(items))
	for _, p := range items {
		out = append(out, h.toJSON(p))
	}
	c.JSON(http.StatusOK, gin.H{"items": out, "total": len(out)})
}

func (h *ProductsAPI) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Product id must be a number.", map[string]string{"id": "Must be a number."}))
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, h.toJSON(p))
}

func (h *ProductsAPI) toJSON(p catalog.Product) productJSON {
	return productJSON{
		ID:         p.ID,
		Slug:       p.Slug(),
		Name:       p.Name,
		Model:      p.Model,
		Processor:  p.Processor,
		Storage:    p.Storage,
		Price:      p.Price.StringFixed(2),
		FinalPrice: p.FinalPrice().StringFixed(2),
		Currency:   catalog.Currency,
		Discount:   p.DiscountPercent,
		Rating:     p.Rating,
		Reviews:    p.Reviews,
		ImageURL:   h.assets.URL(p.Image),
		URL:        p.Path(),
	}
}

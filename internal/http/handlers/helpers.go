package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pehlione.com/storefront/internal/http/validation"
	"pehlione.com/storefront/internal/modules/catalog"
	"pehlione.com/storefront/internal/storage"
	"pehlione.com/storefront/pkg/view"
)

// catalogQuery is the filter form shared by the storefront page and the API.
type catalogQuery struct {
	Q         string  `form:"q" binding:"max=100"`
	MinPrice  string  `form:"min_price" binding:"omitempty,numeric"`
	MaxPrice  string  `form:"max_price" binding:"omitempty,numeric"`
	MinRating float64 `form:"min_rating" binding:"gte=0,lte=5"`
	Sort      string  `form:"sort" binding:"omitempty,oneof=price_asc price_desc rating reviews name"`
}

func (q catalogQuery) echo() view.CatalogFilter {
	f := view.CatalogFilter{Q: q.Q, MinPrice: q.MinPrice, MaxPrice: q.MaxPrice, Sort: q.Sort}
	if q.MinRating > 0 {
		f.MinRating = strconv.FormatFloat(q.MinRating, 'f', -1, 64)
	}
	return f
}

// bindCatalogQuery reads the filter query string. On failure the returned
// field errors are keyed by query parameter.
func bindCatalogQuery(c *gin.Context) (catalog.Query, view.CatalogFilter, validation.FieldErrors) {
	var in catalogQuery
	if err := c.ShouldBindQuery(&in); err != nil {
		return catalog.Query{}, view.CatalogFilter{Q: c.Query("q"), Sort: c.Query("sort")}, validation.FromBindError(err, &in)
	}

	q := catalog.Query{
		Q:         strings.TrimSpace(in.Q),
		MinRating: in.MinRating,
		Sort:      catalog.Sort(in.Sort),
	}
	errs := validation.FieldErrors{}
	q.MinPrice = parsePrice(in.MinPrice, "min_price", errs)
	q.MaxPrice = parsePrice(in.MaxPrice, "max_price", errs)
	if len(errs) > 0 {
		return catalog.Query{}, in.echo(), errs
	}
	return q, in.echo(), nil
}

func parsePrice(raw, field string, errs validation.FieldErrors) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		errs[field] = "Must be a number."
		return nil
	}
	if d.IsNegative() {
		errs[field] = "Must be 0 or more."
		return nil
	}
	return &d
}

// queryFieldErrors turns catalog query errors into form errors.
func queryFieldErrors(err error) (validation.FieldErrors, bool) {
	if errors.Is(err, catalog.ErrInvalidQuery) {
		return validation.FieldErrors{"max_price": "Must be greater than the minimum price."}, true
	}
	return nil, false
}

func productCard(p catalog.Product, assets storage.Storage) view.ProductCard {
	return view.ProductCard{
		ID:              p.ID,
		Name:            p.Name,
		Model:           p.Model,
		Processor:       p.Processor,
		Storage:         p.Storage,
		URL:             p.Path(),
		ImageURL:        assets.URL(p.Image),
		Price:           view.Money(p.FinalPrice(), catalog.Currency),
		OriginalPrice:   view.Money(p.Price, catalog.Currency),
		DiscountPercent: p.DiscountPercent,
		Rating:          p.Rating,
		Reviews:         p.Reviews,
	}
}

func productCards(items []catalog.Product, assets storage.Storage) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		out = append(out, productCard(p, assets))
	}
	return out
}

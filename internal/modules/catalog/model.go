package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"

	"pehlione.com/storefront/internal/shared/slug"
)

// Currency of every catalog price.
const Currency = "EUR"

var hundred = decimal.NewFromInt(100)

// Product is one laptop record of the storefront catalog.
type Product struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Model           string          `json:"model"`
	Processor       string          `json:"processor"`
	Storage         string          `json:"storage"`
	Price           decimal.Decimal `json:"price"`
	Rating          float64         `json:"rating"`
	Reviews         int             `json:"reviews"`
	Image           string          `json:"image"` // asset storage key
	DiscountPercent int             `json:"discount,omitempty"`
}

func (p Product) HasDiscount() bool { return p.DiscountPercent > 0 }

// FinalPrice is the price after discount, rounded to cents.
func (p Product) FinalPrice() decimal.Decimal {
	if !p.HasDiscount() {
		return p.Price
	}
	keep := decimal.NewFromInt(int64(100 - p.DiscountPercent))
	return p.Price.Mul(keep).Div(hundred).Round(2)
}

// Slug is the URL-friendly name used by product pages.
func (p Product) Slug() string {
	return slug.FromName(p.Name + " " + p.Model)
}

// Path is the storefront URL of the product page.
func (p Product) Path() string {
	return "/products/" + strconv.Itoa(p.ID)
}

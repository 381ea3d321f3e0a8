package view

type ProductCard struct {
	ID              int
	Name            string
	Model           string
	Processor       string
	Storage         string
	URL             string
	ImageURL        string
	Price           string // final price
	OriginalPrice   string
	DiscountPercent int
	Rating          float64
	Reviews         int
}

// CatalogFilter echoes the storefront filter form.
type CatalogFilter struct {
	Q         string
	MinPrice  string
	MaxPrice  string
	MinRating string
	Sort      string
}

type CatalogPage struct {
	Title    string
	Filter   CatalogFilter
	Products []ProductCard
	Errors   map[string]string
}

type ProductDetailPage struct {
	Product ProductCard
	Slug    string
	JSONURL string
}

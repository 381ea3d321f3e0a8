package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"

	"pehlione.com/storefront/internal/shared/slug"
)

type Sort string

const (
	SortDefault   Sort = ""
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortRating    Sort = "rating"
	SortReviews   Sort = "reviews"
	SortName      Sort = "name"
)

// Query narrows the catalog. Zero values disable a criterion. Price bounds
// apply to the discounted price.
type Query struct {
	Q         string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	MinRating float64
	Sort      Sort
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (Product, error) {
	return s.repo.Get(ctx, id)
}

// Find resolves a product page reference (id or slug).
func (s *Service) Find(ctx context.Context, ref string) (Product, error) {
	return Lookup(ctx, s.repo, strings.TrimSpace(ref))
}

func (s *Service) Filter(ctx context.Context, q Query) ([]Product, error) {
	if q.MinPrice != nil && q.MaxPrice != nil && q.MinPrice.GreaterThan(*q.MaxPrice) {
		return nil, fmt.Errorf("%w: min price above max price", ErrInvalidQuery)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(q.Q))
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if needle != "" && !matches(p, needle) {
			continue
		}
		price := p.FinalPrice()
		if q.MinPrice != nil && price.LessThan(*q.MinPrice) {
			continue
		}
		if q.MaxPrice != nil && price.GreaterThan(*q.MaxPrice) {
			continue
		}
		if p.Rating < q.MinRating {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out, nil
}

func matches(p Product, needle string) bool {
	for _, field := range []string{p.Name, p.Model, p.Processor, p.Storage} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func sortProducts(items []Product, by Sort) {
	var cmp func(a, b Product) int
	switch by {
	case SortPriceAsc:
		cmp = func(a, b Product) int { return a.FinalPrice().Cmp(b.FinalPrice()) }
	case SortPriceDesc:
		cmp = func(a, b Product) int { return b.FinalPrice().Cmp(a.FinalPrice()) }
	case SortRating:
		cmp = func(a, b Product) int { return compareFloat(b.Rating, a.Rating) }
	case SortReviews:
		cmp = func(a, b Product) int { return b.Reviews - a.Reviews }
	case SortName:
		cmp = func(a, b Product) int { return strings.Compare(a.Name, b.Name) }
	default:
		return
	}
	slices.SortStableFunc(items, cmp)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// maxSuggestDistance bounds how far a mistyped slug may be from a real one.
const maxSuggestDistance = 4

// Suggest returns the product whose slug is closest to ref, for "did you
// mean" hints on unknown product pages. ok is false when nothing is close.
func (s *Service) Suggest(ctx context.Context, ref string) (Product, bool, error) {
	ref = slug.FromName(ref)
	all, err := s.repo.List(ctx)
	if err != nil {
		return Product{}, false, err
	}

	best, bestDist := Product{}, maxSuggestDistance+1
	for _, p := range all {
		if d := levenshtein.ComputeDistance(ref, p.Slug()); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist <= maxSuggestDistance, nil
}

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []Product) []int {
	out := make([]int, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAllExposesFixedRecords(t *testing.T) {
	first := All()
	second := All()

	require.Len(t, first, 8)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(first))

	decimalEqual := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(first, second, decimalEqual); diff != "" {
		t.Fatalf("repeated reads differ (-first +second):\n%s", diff)
	}

	seen := map[int]bool{}
	for _, p := range first {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Model)
		assert.NotEmpty(t, p.Processor)
		assert.NotEmpty(t, p.Storage)
		assert.NotEmpty(t, p.Image)
		assert.True(t, p.Price.IsPositive())
		assert.GreaterOrEqual(t, p.DiscountPercent, 0)
		assert.Less(t, p.DiscountPercent, 100)
	}
}

func TestAllReturnsCopies(t *testing.T) {
	items := All()
	items[0].Name = "tampered"
	items = append(items[:1], items[2:]...)

	again := All()
	require.Len(t, again, 8)
	assert.Equal(t, "MacBook Air", again[0].Name)
	assert.Equal(t, 2, again[1].ID)
}

func TestFinalPrice(t *testing.T) {
	repo := NewStaticRepo()
	ctx := context.Background()

	cases := map[int]string{
		1: "1079.1",
		2: "2399",
		3: "934.15",
		5: "1199.99",
		8: "806.55",
	}
	for id, want := range cases {
		p, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString(want).Equal(p.FinalPrice()), "id %d: got %s", id, p.FinalPrice())
	}
}

func TestRepoLookup(t *testing.T) {
	repo := NewStaticRepo()
	ctx := context.Background()

	p, err := Lookup(ctx, repo, "4")
	require.NoError(t, err)
	assert.Equal(t, "ThinkPad X1 Carbon", p.Name)
	assert.Equal(t, "thinkpad-x1-carbon-gen-11", p.Slug())
	assert.Equal(t, "/products/4", p.Path())

	bySlug, err := Lookup(ctx, repo, "macbook-air-m2-13-inch-2023")
	require.NoError(t, err)
	assert.Equal(t, 1, bySlug.ID)

	_, err = Lookup(ctx, repo, "99")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Lookup(ctx, repo, "no-such-laptop")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepoHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticRepo().List(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFilter(t *testing.T) {
	svc := NewService(NewStaticRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		q    Query
		want []int
	}{
		{"no criteria keeps fixture order", Query{}, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"text matches processor case-insensitively", Query{Q: "INTEL"}, []int{3, 4, 5, 8}},
		{"text matches model", Query{Q: "gen 11"}, []int{4}},
		{"max price uses discounted price", Query{MaxPrice: dec("1000")}, []int{3, 8}},
		{"price window", Query{MinPrice: dec("1079.10"), MaxPrice: dec("1399")}, []int{1, 5, 7}},
		{"min rating", Query{MinRating: 4.7}, []int{1, 2, 4, 6}},
		{"price ascending", Query{Sort: SortPriceAsc}, []int{8, 3, 1, 5, 7, 6, 4, 2}},
		{"price descending", Query{Sort: SortPriceDesc}, []int{2, 4, 6, 7, 5, 1, 3, 8}},
		{"rating is stable for ties", Query{Sort: SortRating}, []int{2, 1, 4, 6, 5, 3, 7, 8}},
		{"reviews", Query{Sort: SortReviews}, []int{1, 2, 3, 6, 4, 5, 7, 8}},
		{"combined", Query{Q: "ssd", MinRating: 4.5, Sort: SortPriceAsc}, []int{3, 1, 5, 6, 4, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Filter(ctx, tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilterRejectsInvertedPriceRange(t *testing.T) {
	svc := NewService(NewStaticRepo())

	_, err := svc.Filter(context.Background(), Query{MinPrice: dec("2000"), MaxPrice: dec("1000")})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestFilterDoesNotReorderFixtures(t *testing.T) {
	svc := NewService(NewStaticRepo())
	ctx := context.Background()

	_, err := svc.Filter(ctx, Query{Sort: SortPriceDesc})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(all))
}

func TestParseFixturesRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "  \n", "empty"},
		{"not a list", "id: 1", "decode fixtures"},
		{"duplicate id", "- {id: 1, price: \"10\"}\n- {id: 1, price: \"20\"}", "duplicate id"},
		{"zero id", "- {id: 0, price: \"10\"}", "bad or duplicate id"},
		{"bad price", "- {id: 1, price: cheap}", "invalid price"},
		{"free", "- {id: 1, price: \"0\"}", "invalid price"},
		{"discount too large", "- {id: 1, price: \"10\", discount: 100}", "out of range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFixtures([]byte(tc.yaml))
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestParseFixtures(t *testing.T) {
	items, err := ParseFixtures([]byte(`
- id: 9
  name: Framework Laptop
  model: "13"
  price: "999.5"
  discount: 50
`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "13", items[0].Model)
	assert.Equal(t, "499.75", items[0].FinalPrice().String())
	assert.Equal(t, "framework-laptop-13", items[0].Slug())
}

func TestSuggest(t *testing.T) {
	svc := NewService(NewStaticRepo())
	ctx := context.Background()

	p, ok, err := svc.Suggest(ctx, "macbook-air-m2-13-inch-2024")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, p.ID)

	p, ok, err = svc.Suggest(ctx, "ThinkPad X1 Carbon Gen 12")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, p.ID)

	_, ok, err = svc.Suggest(ctx, "no-such-laptop")
	require.NoError(t, err)
	assert.False(t, ok)
}

package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtureRecord struct {
	ID        int     `yaml:"id"`
	Name      string  `yaml:"name"`
	Model     string  `yaml:"model"`
	Processor string  `yaml:"processor"`
	Storage   string  `yaml:"storage"`
	Price     string  `yaml:"price"`
	Rating    float64 `yaml:"rating"`
	Reviews   int     `yaml:"reviews"`
	Image     string  `yaml:"image"`
	Discount  int     `yaml:"discount"`
}

// fixtures is built once at load and never mutated; readers get copies.
var fixtures = mustParseFixtures(fixturesYAML)

func mustParseFixtures(data []byte) []Product {
	items, err := ParseFixtures(data)
	if err != nil {
		panic(err)
	}
	return items
}

// ParseFixtures decodes a YAML product list and checks that ids are unique
// and positive, prices parse and discounts stay below 100%.
func ParseFixtures(data []byte) ([]Product, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("catalog: fixture payload is empty")
	}
	var records []fixtureRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("catalog: decode fixtures: %w", err)
	}

	seen := make(map[int]bool, len(records))
	out := make([]Product, 0, len(records))
	for i, r := range records {
		if r.ID <= 0 || seen[r.ID] {
			return nil, fmt.Errorf("catalog: record %d: bad or duplicate id %d", i, r.ID)
		}
		seen[r.ID] = true

		price, err := decimal.NewFromString(r.Price)
		if err != nil || !price.IsPositive() {
			return nil, fmt.Errorf("catalog: product %d: invalid price %q", r.ID, r.Price)
		}
		if r.Discount < 0 || r.Discount >= 100 {
			return nil, fmt.Errorf("catalog: product %d: discount %d out of range", r.ID, r.Discount)
		}

		out = append(out, Product{
			ID:              r.ID,
			Name:            r.Name,
			Model:           r.Model,
			Processor:       r.Processor,
			Storage:         r.Storage,
			Price:           price,
			Rating:          r.Rating,
			Reviews:         r.Reviews,
			Image:           r.Image,
			DiscountPercent: r.Discount,
		})
	}
	return out, nil
}

// All returns a fresh copy of the catalog in fixture order.
func All() []Product {
	out := make([]Product, len(fixtures))
	copy(out, fixtures)
	return out
}

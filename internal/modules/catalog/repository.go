package catalog

import (
	"context"
	"strconv"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int) (Product, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
}

// StaticRepo serves the built-in fixture list.
type StaticRepo struct{}

func NewStaticRepo() *StaticRepo { return &StaticRepo{} }

func (r *StaticRepo) List(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return All(), nil
}

func (r *StaticRepo) Get(ctx context.Context, id int) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	for _, p := range fixtures {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *StaticRepo) GetBySlug(ctx context.Context, slug string) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	for _, p := range fixtures {
		if p.Slug() == slug {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Lookup resolves a numeric id or a slug.
func Lookup(ctx context.Context, r Repository, ref string) (Product, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		return r.Get(ctx, id)
	}
	return r.GetBySlug(ctx, ref)
}

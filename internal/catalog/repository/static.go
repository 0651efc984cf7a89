package repository

import (
	"context"
	"strings"

	"github.com/evershine/storefront-core/internal/catalog/dto"
	"github.com/evershine/storefront-core/internal/model"
)

// StaticRepository serves the fixed catalog feed from memory. The feed is
// supplied at construction and never re-fetched or mutated.
type StaticRepository struct {
	products   []model.Product
	categories []dto.Category
}

func NewStaticRepository(products []model.Product) *StaticRepository {
	return &StaticRepository{
		products:   products,
		categories: buildCategories(products),
	}
}

// NewSeededRepository builds the repository over the built-in demo catalog.
func NewSeededRepository() *StaticRepository {
	return NewStaticRepository(seedProducts())
}

func (r *StaticRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *StaticRepository) FindAll(_ context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	matched := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if f != nil && !matches(&p, f) {
			continue
		}
		matched = append(matched, p)
	}

	count := len(matched)
	if f != nil && f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, count, nil
}

func (r *StaticRepository) Categories(_ context.Context) ([]dto.Category, error) {
	out := make([]dto.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func matches(p *model.Product, f *dto.ProductFilters) bool {
	if f.Category != "" && f.Category != "all" && p.Category != f.Category {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	return true
}

func buildCategories(products []model.Product) []dto.Category {
	counts := map[string]int{}
	for _, p := range products {
		counts[p.Category]++
	}

	categories := []dto.Category{{ID: "all", Name: "All Collections", Count: len(products)}}
	for _, c := range []dto.Category{
		{ID: "necklaces", Name: "Necklaces"},
		{ID: "rings", Name: "Rings"},
		{ID: "earrings", Name: "Earrings"},
		{ID: "bracelets", Name: "Bracelets"},
		{ID: "accessories", Name: "Accessories"},
		{ID: "home-decor", Name: "Home Décor"},
	} {
		c.Count = counts[c.ID]
		categories = append(categories, c)
	}
	return categories
}

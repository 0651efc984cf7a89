package catalog

import (
	"context"

	"github.com/evershine/storefront-core/internal/catalog/dto"
	"github.com/evershine/storefront-core/internal/model"
)

// Repository is the read-only catalog feed. Implementations never mutate
// products after construction.
type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Categories(ctx context.Context) ([]dto.Category, error)
}

package catalog

import (
	"context"

	"github.com/evershine/storefront-core/internal/catalog/dto"
	"github.com/evershine/storefront-core/internal/model"
)

type UseCase interface {
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	ListCategories(ctx context.Context) ([]dto.Category, error)
}

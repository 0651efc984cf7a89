package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/evershine/storefront-core/internal/catalog"
	"github.com/evershine/storefront-core/internal/catalog/dto"
	"github.com/evershine/storefront-core/internal/model"
	"github.com/evershine/storefront-core/pkg/logger"
)

type catalogUseCase struct {
	repo   catalog.Repository
	logger logger.Logger
}

func NewCatalogUseCase(repo catalog.Repository, log logger.Logger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	if filters != nil && filters.SearchQuery != "" {
		uc.logger.Debug("catalog search",
			zap.String("query", filters.SearchQuery),
			zap.Int("matches", count),
		)
	}
	return products, count, nil
}

func (uc *catalogUseCase) ListCategories(ctx context.Context) ([]dto.Category, error) {
	return uc.repo.Categories(ctx)
}

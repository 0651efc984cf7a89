package admin

import (
	"context"

	"github.com/evershine/storefront-core/internal/admin/dto"
	"github.com/evershine/storefront-core/internal/model"
)

// UseCase serves the admin dashboard. Everything here is display-only:
// static sample data plus whatever orders checkout recorded this session.
// Gating on User.IsAdmin is the caller's concern.
type UseCase interface {
	Dashboard(ctx context.Context) (*dto.DashboardStats, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListUsers(ctx context.Context) ([]dto.CustomerRow, error)
	LowStock(ctx context.Context) ([]dto.LowStockAlert, error)

	// RecordOrder accepts an order from a completed checkout. Implements
	// checkout.OrderRecorder.
	RecordOrder(ctx context.Context, order *model.Order)
}

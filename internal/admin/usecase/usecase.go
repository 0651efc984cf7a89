package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/evershine/storefront-core/internal/admin"
	"github.com/evershine/storefront-core/internal/admin/dto"
	"github.com/evershine/storefront-core/internal/catalog"
	"github.com/evershine/storefront-core/internal/model"
	"github.com/evershine/storefront-core/pkg/logger"
)

// Static base figures shown on the dashboard cards.
const (
	baseRevenue     = 245890
	baseOrderCount  = 1234
	baseActiveUsers = 892
)

type adminUseCase struct {
	catalog catalog.Repository
	logger  logger.Logger

	mu       sync.RWMutex
	recorded []model.Order // session orders, newest first
	samples  []model.Order
}

func NewAdminUseCase(catalogRepo catalog.Repository, log logger.Logger) admin.UseCase {
	return &adminUseCase{
		catalog: catalogRepo,
		logger:  log,
		samples: sampleOrders(),
	}
}

// sampleOrders seeds the orders table: five historical orders with ids
// #1001..#1005 and a rotating status, matching the demo dashboard.
func sampleOrders() []model.Order {
	statuses := []string{model.OrderStatusDelivered, model.OrderStatusProcessing, model.OrderStatusShipped}
	orders := make([]model.Order, 0, 5)
	for i := 1; i <= 5; i++ {
		subtotal := float64(i * 1500)
		orders = append(orders, model.Order{
			ID:            fmt.Sprintf("%d", 1000+i),
			CustomerName:  fmt.Sprintf("User %d", i),
			CustomerEmail: fmt.Sprintf("user%d@example.com", i),
			PaymentMethod: model.PaymentMethodCard,
			Summary:       model.NewOrderSummary(subtotal),
			Status:        statuses[i%3],
			CreatedAt:     time.Date(2024, time.January, i, 12, 0, 0, 0, time.UTC),
		})
	}
	return orders
}

func (uc *adminUseCase) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	_, productCount, err := uc.catalog.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	stats := &dto.DashboardStats{
		TotalRevenue:  baseRevenue,
		TotalOrders:   baseOrderCount + len(uc.recorded),
		TotalProducts: productCount,
		ActiveUsers:   baseActiveUsers,
	}
	for _, o := range uc.recorded {
		stats.TotalRevenue += o.Summary.Total
	}
	return stats, nil
}

func (uc *adminUseCase) ListOrders(_ context.Context) ([]model.Order, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.Order, 0, len(uc.recorded)+len(uc.samples))
	out = append(out, uc.recorded...)
	out = append(out, uc.samples...)
	return out, nil
}

func (uc *adminUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	orders, err := uc.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (uc *adminUseCase) ListUsers(_ context.Context) ([]dto.CustomerRow, error) {
	rows := make([]dto.CustomerRow, 0, 5)
	for i := 1; i <= 5; i++ {
		rows = append(rows, dto.CustomerRow{
			ID:       fmt.Sprintf("%d", 1000+i),
			Name:     fmt.Sprintf("User %d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			JoinedAt: fmt.Sprintf("2024-01-%02d", i),
			Orders:   i * 2,
			Active:   i%2 == 0,
		})
	}
	return rows, nil
}

func (uc *adminUseCase) LowStock(_ context.Context) ([]dto.LowStockAlert, error) {
	alerts := make([]dto.LowStockAlert, 0, 3)
	for i := 1; i <= 3; i++ {
		alerts = append(alerts, dto.LowStockAlert{
			ProductName: fmt.Sprintf("Product %d", i),
			Remaining:   i,
		})
	}
	return alerts, nil
}

func (uc *adminUseCase) RecordOrder(_ context.Context, order *model.Order) {
	if order == nil {
		return
	}

	uc.mu.Lock()
	uc.recorded = append([]model.Order{*order}, uc.recorded...)
	uc.mu.Unlock()

	uc.logger.Info("order recorded",
		zap.String("order_id", order.ID),
		zap.String("status", order.Status),
	)
}

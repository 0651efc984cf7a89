package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminUCPkg "github.com/evershine/storefront-core/internal/admin/usecase"
	catRepoPkg "github.com/evershine/storefront-core/internal/catalog/repository"
	"github.com/evershine/storefront-core/internal/model"
	"github.com/evershine/storefront-core/pkg/logger"
)

func TestDashboard_BaseFigures(t *testing.T) {
	uc := adminUCPkg.NewAdminUseCase(catRepoPkg.NewSeededRepository(), logger.NewNop())

	stats, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 245890.0, stats.TotalRevenue)
	assert.Equal(t, 1234, stats.TotalOrders)
	assert.Equal(t, 38, stats.TotalProducts)
	assert.Equal(t, 892, stats.ActiveUsers)
}

func TestDashboard_FoldsInRecordedOrders(t *testing.T) {
	ctx := context.Background()
	uc := adminUCPkg.NewAdminUseCase(catRepoPkg.NewSeededRepository(), logger.NewNop())

	uc.RecordOrder(ctx, &model.Order{
		ID:      "live-1",
		Summary: model.NewOrderSummary(1000),
		Status:  model.OrderStatusPending,
	})

	stats, err := uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1235, stats.TotalOrders)
	assert.InDelta(t, 245890.0+1100.0, stats.TotalRevenue, 1e-9)
}

func TestListOrders_RecordedOrdersFirst(t *testing.T) {
	ctx := context.Background()
	uc := adminUCPkg.NewAdminUseCase(catRepoPkg.NewSeededRepository(), logger.NewNop())

	before, err := uc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, before, 5) // the seeded samples

	uc.RecordOrder(ctx, &model.Order{ID: "live-1", Status: model.OrderStatusPending, CreatedAt: time.Now()})
	uc.RecordOrder(ctx, &model.Order{ID: "live-2", Status: model.OrderStatusPending, CreatedAt: time.Now()})

	after, err := uc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, after, 7)
	assert.Equal(t, "live-2", after[0].ID) // newest first
	assert.Equal(t, "live-1", after[1].ID)
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()
	uc := adminUCPkg.NewAdminUseCase(catRepoPkg.NewSeededRepository(), logger.NewNop())

	sample, err := uc.GetOrder(ctx, "1003")
	require.NoError(t, err)
	require.NotNil(t, sample)
	assert.Equal(t, model.OrderStatusDelivered, sample.Status)

	missing, err := uc.GetOrder(ctx, "9999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListUsersAndLowStock_SampleRows(t *testing.T) {
	ctx := context.Background()
	uc := adminUCPkg.NewAdminUseCase(catRepoPkg.NewSeededRepository(), logger.NewNop())

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)
	assert.Equal(t, "user1@example.com", users[0].Email)
	assert.Equal(t, 2, users[0].Orders)
	assert.False(t, users[0].Active)
	assert.True(t, users[1].Active)

	alerts, err := uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, 1, alerts[0].Remaining)
}

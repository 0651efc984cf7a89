package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/evershine/storefront-core/config"
	"github.com/evershine/storefront-core/internal/admin"
	adminUCPkg "github.com/evershine/storefront-core/internal/admin/usecase"
	authRepoPkg "github.com/evershine/storefront-core/internal/auth/repository"
	authUCPkg "github.com/evershine/storefront-core/internal/auth/usecase"
	cartUCPkg "github.com/evershine/storefront-core/internal/cart/usecase"
	catalogDto "github.com/evershine/storefront-core/internal/catalog/dto"
	catRepoPkg "github.com/evershine/storefront-core/internal/catalog/repository"
	catUCPkg "github.com/evershine/storefront-core/internal/catalog/usecase"
	checkoutDto "github.com/evershine/storefront-core/internal/checkout/dto"
	checkoutUCPkg "github.com/evershine/storefront-core/internal/checkout/usecase"
	"github.com/evershine/storefront-core/internal/model"
	"github.com/evershine/storefront-core/pkg/logger"
	"github.com/evershine/storefront-core/pkg/storage"
	"github.com/evershine/storefront-core/pkg/storage/memory"
	"github.com/evershine/storefront-core/pkg/storage/redisstore"
	"github.com/evershine/storefront-core/pkg/storage/sqlite"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     cfg.App.Env == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger := logger.New(logConfig)
	defer appLogger.Sync()

	ctx := context.Background()

	// 3. Open the snapshot store (the durable client-local storage)
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("could not open snapshot store: %v", err)
	}
	defer store.Close()
	appLogger.Info("Snapshot store ready", zap.String("backend", cfg.Storage.Backend))

	// 4. Initialize Repositories
	catalogRepo := catRepoPkg.NewSeededRepository()
	credRepo := authRepoPkg.NewSeededRepository()

	// 5. Initialize UseCases
	catalogUC := catUCPkg.NewCatalogUseCase(catalogRepo, appLogger)
	cartUC := cartUCPkg.NewCartUseCase(ctx, store, appLogger)
	authUC := authUCPkg.NewAuthUseCase(ctx, credRepo, store,
		time.Duration(cfg.Simulation.AuthDelayMs)*time.Millisecond, appLogger)
	adminUC := adminUCPkg.NewAdminUseCase(catalogRepo, appLogger)
	checkoutUC := checkoutUCPkg.NewCheckoutUseCase(cartUC, authUC, adminUC,
		time.Duration(cfg.Simulation.OrderDelayMs)*time.Millisecond, appLogger)

	// 6. Scripted storefront walkthrough
	fmt.Println("=== Evershine storefront demo ===")

	categories, err := catalogUC.ListCategories(ctx)
	if err != nil {
		appLogger.Fatal("list categories", zap.Error(err))
	}
	for _, c := range categories {
		fmt.Printf("  %-16s %d pieces\n", c.Name, c.Count)
	}

	earrings, count, err := catalogUC.ListProducts(ctx, &catalogDto.ProductFilters{Category: "earrings"})
	if err != nil {
		appLogger.Fatal("list products", zap.Error(err))
	}
	fmt.Printf("\nEarrings (%d):\n", count)
	for _, p := range earrings {
		fmt.Printf("  [%s] %s - %.0f (%s)\n", p.ID, p.Name, p.Price, p.Brand)
	}

	if items := cartUC.Items(); len(items) > 0 {
		fmt.Printf("\nRestored cart from a previous session (%d items), clearing for the demo.\n", cartUC.ItemCount())
		cartUC.Clear(ctx)
	}

	hoops, _ := catalogUC.GetProduct(ctx, "1")
	ring, _ := catalogUC.GetProduct(ctx, "2")
	cartUC.AddItem(ctx, *hoops, 1)
	cartUC.AddItem(ctx, *hoops, 1)
	cartUC.AddItem(ctx, *ring, 1)

	fmt.Println("\nCart:")
	for _, line := range cartUC.Items() {
		fmt.Printf("  %dx %s - %.0f\n", line.Quantity, line.Product.Name, line.Subtotal())
	}
	summary := cartUC.Summary()
	fmt.Printf("  subtotal %.2f, tax %.2f, total %.2f (%d items)\n",
		summary.Subtotal, summary.Tax, summary.Total, cartUC.ItemCount())

	user, err := authUC.Login(ctx, "john@example.com", "password123")
	if err != nil {
		appLogger.Fatal("demo login failed", zap.Error(err))
	}
	fmt.Printf("\nLogged in as %s <%s>\n", user.Name, user.Email)

	if errs := checkoutUC.SubmitShipping(checkoutDto.ShippingInput{
		FirstName:  "John",
		LastName:   "Doe",
		Address:    "42 Artisan Lane",
		City:       "Jaipur",
		PostalCode: "302001",
		Country:    "India",
	}); len(errs) > 0 {
		appLogger.Fatal("shipping rejected", zap.Any("errors", errs))
	}

	_, order, err := checkoutUC.SubmitPayment(ctx, checkoutDto.PaymentInput{
		Method:     model.PaymentMethodCard,
		CardNumber: "4111 1111 1111 1111",
		ExpiryDate: "12/29",
		CVV:        "123",
		CardName:   "John Doe",
	})
	if err != nil {
		appLogger.Fatal("payment processing failed", zap.Error(err))
	}
	fmt.Printf("\nOrder %s confirmed: %.2f via %s (cart now holds %d items)\n",
		order.ID, order.Summary.Total, order.PaymentMethod, cartUC.ItemCount())

	// Admin view
	authUC.Logout(ctx)
	adminUser, err := authUC.Login(ctx, "admin@evershine.com", "evershine123")
	if err != nil {
		appLogger.Fatal("admin login failed", zap.Error(err))
	}
	printDashboard(ctx, adminUser, adminUC, appLogger)
}

// openStore selects the snapshot backend. Unknown values fall back to
// the process-local store so the demo always starts.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return sqlite.New(cfg.Storage.SQLitePath)
	case "redis":
		return redisstore.New(ctx, &redisstore.Config{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
	default:
		return memory.New(), nil
	}
}

func printDashboard(ctx context.Context, user *model.User, adminUC admin.UseCase, appLogger logger.Logger) {
	if !user.IsAdmin {
		fmt.Println("\nAdmin dashboard is hidden for non-admin users.")
		return
	}

	stats, err := adminUC.Dashboard(ctx)
	if err != nil {
		appLogger.Fatal("load dashboard", zap.Error(err))
	}
	fmt.Printf("\nAdmin dashboard for %s:\n", user.Name)
	fmt.Printf("  revenue %.0f | orders %d | products %d | active users %d\n",
		stats.TotalRevenue, stats.TotalOrders, stats.TotalProducts, stats.ActiveUsers)

	orders, _ := adminUC.ListOrders(ctx)
	fmt.Println("  recent orders:")
	for i, o := range orders {
		if i == 5 {
			break
		}
		fmt.Printf("    #%s %-10s %.2f %s\n", o.ID, o.Status, o.Summary.Total, o.CustomerName)
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/evershine/storefront-core/internal/cart"
	"github.com/evershine/storefront-core/internal/model"
	"github.com/evershine/storefront-core/pkg/logger"
	"github.com/evershine/storefront-core/pkg/storage"
)

type cartUseCase struct {
	store  storage.Store
	logger logger.Logger

	mu    sync.RWMutex
	lines []model.CartLine // insertion order, at most one line per product id
}

// NewCartUseCase builds the cart store and rehydrates it from the most
// recent snapshot. Corrupt or missing snapshot data yields an empty cart,
// never an error.
func NewCartUseCase(ctx context.Context, store storage.Store, log logger.Logger) cart.UseCase {
	uc := &cartUseCase{
		store:  store,
		logger: log,
	}
	uc.lines = uc.restore(ctx)
	return uc
}

func (uc *cartUseCase) restore(ctx context.Context) []model.CartLine {
	raw, err := uc.store.Get(ctx, storage.KeyCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			uc.logger.Warn("cart snapshot unreadable, starting empty", zap.Error(err))
		}
		return nil
	}

	var snapshot []model.CartLine
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		// Foreign or corrupt data in the store. Treat as absent.
		uc.logger.Warn("cart snapshot malformed, starting empty", zap.Error(err))
		return nil
	}

	lines := make([]model.CartLine, 0, len(snapshot))
	seen := map[string]bool{}
	for _, l := range snapshot {
		if l.Product.ID == "" || l.Quantity < 1 || seen[l.Product.ID] {
			uc.logger.Warn("dropping invalid cart line from snapshot",
				zap.String("product_id", l.Product.ID),
				zap.Int("quantity", l.Quantity),
			)
			continue
		}
		seen[l.Product.ID] = true
		lines = append(lines, l)
	}
	return lines
}

// persist writes the full line sequence synchronously after a mutation.
// Callers hold the write lock. Failure is logged and swallowed: the
// in-memory state stays authoritative and there is no rollback.
func (uc *cartUseCase) persist(ctx context.Context) {
	data, err := json.Marshal(uc.lines)
	if err != nil {
		uc.logger.Error("marshal cart snapshot", zap.Error(err))
		return
	}
	if err := uc.store.Set(ctx, storage.KeyCart, data); err != nil {
		uc.logger.Error("write cart snapshot", zap.Error(err))
	}
}

func (uc *cartUseCase) AddItem(ctx context.Context, product model.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.lines {
		if uc.lines[i].Product.ID == product.ID {
			uc.lines[i].Quantity += quantity
			uc.persist(ctx)
			return
		}
	}
	uc.lines = append(uc.lines, model.CartLine{Product: product, Quantity: quantity})
	uc.persist(ctx)
}

func (uc *cartUseCase) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.lines {
		if uc.lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			uc.lines = append(uc.lines[:i], uc.lines[i+1:]...)
		} else {
			uc.lines[i].Quantity = quantity
		}
		uc.persist(ctx)
		return
	}
	// Unknown product id: no-op.
}

func (uc *cartUseCase) RemoveItem(ctx context.Context, productID string) {
	uc.UpdateQuantity(ctx, productID, 0)
}

func (uc *cartUseCase) Clear(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.lines = nil
	uc.persist(ctx)
}

func (uc *cartUseCase) Items() []model.CartLine {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.CartLine, len(uc.lines))
	copy(out, uc.lines)
	return out
}

func (uc *cartUseCase) Total() float64 {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	var total float64
	for _, l := range uc.lines {
		total += l.Subtotal()
	}
	return total
}

func (uc *cartUseCase) ItemCount() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	var count int
	for _, l := range uc.lines {
		count += l.Quantity
	}
	return count
}

func (uc *cartUseCase) Summary() model.OrderSummary {
	return model.NewOrderSummary(uc.Total())
}

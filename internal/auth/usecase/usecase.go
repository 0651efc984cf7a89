package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evershine/storefront-core/internal/auth"
	"github.com/evershine/storefront-core/internal/model"
	"github.com/evershine/storefront-core/pkg/logger"
	"github.com/evershine/storefront-core/pkg/storage"
)

type authUseCase struct {
	repo   auth.Repository
	store  storage.Store
	logger logger.Logger
	delay  time.Duration // simulated network latency per call

	mu      sync.RWMutex
	current *model.User
}

// NewAuthUseCase builds the auth store and rehydrates the session from
// its snapshot. A corrupt snapshot means logged out, never a failure.
func NewAuthUseCase(ctx context.Context, repo auth.Repository, store storage.Store, delay time.Duration, log logger.Logger) auth.UseCase {
	uc := &authUseCase{
		repo:   repo,
		store:  store,
		logger: log,
		delay:  delay,
	}
	uc.current = uc.restore(ctx)
	return uc
}

func (uc *authUseCase) restore(ctx context.Context) *model.User {
	raw, err := uc.store.Get(ctx, storage.KeyUser)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			uc.logger.Warn("session snapshot unreadable, starting logged out", zap.Error(err))
		}
		return nil
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		uc.logger.Warn("session snapshot malformed, starting logged out", zap.Error(err))
		return nil
	}
	return &user
}

// sleep is the single suspend point standing in for a network round trip.
// There is no cancellation support beyond the context itself.
func (uc *authUseCase) sleep(ctx context.Context) error {
	if uc.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(uc.delay):
		return nil
	}
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*model.User, error) {
	if err := uc.sleep(ctx); err != nil {
		return nil, err
	}

	cred, err := uc.repo.FindByCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		// Current user is left unchanged on failure.
		return nil, auth.ErrInvalidCredentials
	}

	user := cred.User()
	uc.setCurrent(ctx, user)
	uc.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.Bool("is_admin", user.IsAdmin),
	)
	return user, nil
}

func (uc *authUseCase) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if err := uc.sleep(ctx); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, auth.ErrEmailTaken
	}

	cred := model.Credential{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := uc.repo.Add(ctx, cred); err != nil {
		return nil, err
	}

	user := cred.User()
	uc.setCurrent(ctx, user)
	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

func (uc *authUseCase) Logout(ctx context.Context) {
	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()

	if err := uc.store.Delete(ctx, storage.KeyUser); err != nil {
		uc.logger.Error("clear session snapshot", zap.Error(err))
	}
}

func (uc *authUseCase) CurrentUser() *model.User {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.current == nil {
		return nil
	}
	user := *uc.current
	return &user
}

func (uc *authUseCase) setCurrent(ctx context.Context, user *model.User) {
	uc.mu.Lock()
	uc.current = user
	uc.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		uc.logger.Error("marshal session snapshot", zap.Error(err))
		return
	}
	if err := uc.store.Set(ctx, storage.KeyUser, data); err != nil {
		uc.logger.Error("write session snapshot", zap.Error(err))
	}
}
